package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/net/resp"
	"github.com/port-russell/marina-api/service"
)

// UserHandler handles user account CRUD. Password hashes are excluded from
// every response.
type UserHandler struct {
	svc    *service.UserService
	logger *logger.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc *service.UserService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: log,
	}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "failed to list users: %v", err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, users)
}

// Get returns one user by email.
func (h *UserHandler) Get(c *gin.Context) {
	email := c.Param("email")

	user, err := h.svc.GetUser(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Utilisateur non trouvé"))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to get user %s: %v", email, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, user)
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("username, email et password sont obligatoires"))
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			resp.Fail(c.Writer, resp.BadRequest("username, email et password sont obligatoires"))
		case errors.Is(err, repository.ErrEmailTaken):
			resp.Fail(c.Writer, resp.Conflict("Un utilisateur existe déjà avec cet email"))
		default:
			h.logger.Errorf(c.Request.Context(), "failed to create user: %v", err)
			resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		}
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, gin.H{
		"message": "Utilisateur créé",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Update changes the supplied fields of a user.
func (h *UserHandler) Update(c *gin.Context) {
	email := c.Param("email")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Données invalides."))
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Utilisateur non trouvé"))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to update user %s: %v", email, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, gin.H{
		"message": "Utilisateur mis à jour",
		"user":    user,
	})
}

// Delete removes a user by email.
func (h *UserHandler) Delete(c *gin.Context) {
	email := c.Param("email")

	if err := h.svc.DeleteUser(c.Request.Context(), email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Utilisateur non trouvé"))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to delete user %s: %v", email, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, "Utilisateur supprimé")
}
