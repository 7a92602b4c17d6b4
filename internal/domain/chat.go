package domain

type ChatSender string

const (
	ChatSenderUser  ChatSender = "user"
	ChatSenderAgent ChatSender = "alice"
)

type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp string     `json:"timestamp"`
}
