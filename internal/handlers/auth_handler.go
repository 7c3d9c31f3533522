package handler

import (
	"net/http"
	"time"

	"invoice-dashboard-backend/internal/actions"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	actions *actions.AuthActions
}

func NewAuthHandler(a *actions.AuthActions) *AuthHandler {
	return &AuthHandler{actions: a}
}

// Login authenticates the submitted credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form payload"})
		return
	}

	session, message, err := h.actions.Authenticate(c.Request.PostForm)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if message != "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": message})
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie("session_token", session.Token.String(), maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
