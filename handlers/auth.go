package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forumhub/forumhub/backend/forum-service/internal/config"
	"github.com/forumhub/forumhub/backend/forum-service/internal/credentials"
	"github.com/forumhub/forumhub/backend/forum-service/internal/sessions"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/logger"
	"github.com/forumhub/forumhub/backend/forum-service/pkg/metrics"
)

// AuthHandler owns the login and registration flows. It is the only handler
// that talks to the credential service.
type AuthHandler struct {
	cfg         *config.Config
	credsSvc    *credentials.Service
	sessionsSvc *sessions.Service
}

func NewAuthHandler(cfg *config.Config, c *credentials.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, credsSvc: c, sessionsSvc: s}
}

// Register routes under /users
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	u := rg.Group("/users")
	u.GET("/login", h.LoginForm)
	u.POST("/login", h.Login)
	u.GET("/create", h.CreateForm)
	u.POST("/create", h.Create)
	u.POST("/logout", h.Logout)
}

// LoginForm describes the login form. Rendering is an external concern; the
// handler only hands over the typed descriptor.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": "login", "action": "/users/login", "fields": []string{"username", "password"}})
}

func (h *AuthHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": "create", "action": "/users/create", "fields": []string{"username", "password"}})
}

// Login verifies credentials and binds a fresh session handle to the
// identity. Unknown user and wrong password are deliberately indistinguishable
// in the response.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	identity, err := h.credsSvc.Verify(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, credentials.ErrUnknownUser) || errors.Is(err, credentials.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication failed"})
			return
		}
		logger.Errorf("login verification error: %v", err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	handle, err := h.sessionsSvc.Bind(c.Request.Context(), identity)
	if err != nil {
		logger.Errorf("failed to bind session for %q: %v", identity, err)
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	c.SetCookie(h.cfg.Auth.CookieName, handle, int(h.cfg.Auth.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Create registers a new user and sends them to the login form.
func (h *AuthHandler) Create(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	err := h.credsSvc.Register(c.Request.Context(), username, password)
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
		c.Redirect(http.StatusSeeOther, "/users/login")
	case errors.Is(err, credentials.ErrUsernameTaken):
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
	case errors.Is(err, credentials.ErrEmptyCredentials):
		metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
	default:
		logger.Errorf("registration error: %v", err)
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
	}
}

// Logout unbinds the session handle and clears the cookie. An absent or
// unknown handle is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	if handle, err := c.Cookie(h.cfg.Auth.CookieName); err == nil && handle != "" {
		if err := h.sessionsSvc.Unbind(c.Request.Context(), handle); err != nil {
			logger.Errorf("failed to unbind session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
	}
	c.SetCookie(h.cfg.Auth.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
