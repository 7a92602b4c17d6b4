package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pranav-19192/travelease/config"
)

const (
	// FallbackReply is shown whenever the upstream call fails for any
	// reason. The chat surface never reports a hard error.
	FallbackReply = "Our system is experiencing a high volume of requests. How else can I help you today?"

	// EmptyReply covers a successful call that produced no text.
	EmptyReply = "I'm sorry, I couldn't process that. Can you try again?"

	systemInstruction = "You are Alice, a friendly and helpful customer support agent for TravelEase India. " +
		"You help users with their journey across Indian cities like Mumbai, Delhi, Bangalore, etc. " +
		"You check delays for booking #TR-8821 (Mumbai-Pune route), and handle refund policies or date " +
		"modifications according to Indian travel regulations. Keep responses concise, supportive, and " +
		"use Indian English nuances where appropriate."
)

type generateRequest struct {
	Contents          []content      `json:"contents"`
	SystemInstruction *content       `json:"systemInstruction,omitempty"`
	GenerationConfig  generationConf `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConf struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Client talks to the generative-language API backing the support
// chat. Send never returns an error: failures map to FallbackReply.
type Client struct {
	httpClient *http.Client
	endpoint   string
	model      string
	apiKey     string
}

func NewClient(cfg config.ChatConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
	}
}

func (c *Client) Send(ctx context.Context, message string) string {
	reply, err := c.generate(ctx, message)
	if err != nil {
		log.Printf("chat service error: %v", err)
		return FallbackReply
	}
	if reply == "" {
		return EmptyReply
	}
	return reply
}

func (c *Client) generate(ctx context.Context, message string) (string, error) {
	payload := generateRequest{
		Contents:          []content{{Parts: []part{{Text: message}}}},
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		GenerationConfig:  generationConf{Temperature: 0.7},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
