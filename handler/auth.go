package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/net/resp"
	"github.com/port-russell/marina-api/service"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	svc    *service.AuthService
	logger *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: log,
	}
}

// Login verifies credentials and returns a session token with the user
// identity. Wrong-email and wrong-password failures keep their distinct
// messages.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Données invalides."))
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			resp.Fail(c.Writer, resp.UnAuthorized("Email incorrect"))
		case errors.Is(err, service.ErrPasswordMismatch):
			resp.Fail(c.Writer, resp.UnAuthorized("Mot de passe incorrect"))
		default:
			h.logger.Errorf(c.Request.Context(), "login failed: %v", err)
			resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		}
		return
	}

	resp.Success(c.Writer, gin.H{
		"message": "Login réussi",
		"token":   token,
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Logout is stateless: the client discards its token; the server has no
// session state to clear.
func (h *AuthHandler) Logout(c *gin.Context) {
	resp.Success(c.Writer, gin.H{
		"message": "Déconnexion réussie (supprime le token côté client)",
	})
}
