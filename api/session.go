package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pranav-19192/travelease/internal/domain"
	"github.com/pranav-19192/travelease/internal/service/app"
)

type SessionHandler struct {
	app app.Navigator
}

type loginRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"required"`
	Avatar string `json:"avatar"`
}

type sessionResponse struct {
	User *domain.User `json:"user"`
	View app.View     `json:"view"`
}

func NewSessionHandler(app app.Navigator) *SessionHandler {
	return &SessionHandler{app: app}
}

func (h *SessionHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/login/google", h.loginGoogle)
	router.POST("/logout", h.logout)
	router.GET("/me", h.me)
}

func (h *SessionHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := req.Name
	if name == "" {
		name = strings.SplitN(req.Email, "@", 2)[0]
	}
	user := domain.User{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  req.Email,
		Avatar: req.Avatar,
	}

	if err := h.app.Login(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{User: h.app.CurrentUser(), View: h.app.View()})
}

// loginGoogle mirrors the demo's mocked OAuth flow: a fixed identity,
// no redirect.
func (h *SessionHandler) loginGoogle(c *gin.Context) {
	user := domain.User{
		ID:     "google_12345",
		Name:   "Debosmita Sharma",
		Email:  "debosmita.travels@gmail.com",
		Avatar: "https://picsum.photos/seed/debosmita/100/100",
	}

	if err := h.app.Login(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessionResponse{User: h.app.CurrentUser(), View: h.app.View()})
}

func (h *SessionHandler) logout(c *gin.Context) {
	if err := h.app.Logout(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse{User: nil, View: h.app.View()})
}

func (h *SessionHandler) me(c *gin.Context) {
	user := h.app.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, sessionResponse{User: user, View: h.app.View()})
}
