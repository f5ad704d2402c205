package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/net/resp"
	"github.com/port-russell/marina-api/service"
)

// CatwayHandler handles the docking slot directory.
type CatwayHandler struct {
	svc    *service.CatwayService
	logger *logger.Logger
}

// NewCatwayHandler creates a new catway handler.
func NewCatwayHandler(svc *service.CatwayService, log *logger.Logger) *CatwayHandler {
	return &CatwayHandler{
		svc:    svc,
		logger: log,
	}
}

// catwayNumber parses the :id path parameter. A non-numeric id is a client
// error, reported in the caller.
func catwayNumber(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return n, true
}

// List returns all catways sorted by number.
func (h *CatwayHandler) List(c *gin.Context) {
	catways, err := h.svc.ListCatways(c.Request.Context())
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "failed to list catways: %v", err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, catways)
}

// Get returns one catway by number.
func (h *CatwayHandler) Get(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.BadRequest("L'id doit être un nombre."))
		return
	}

	catway, err := h.svc.GetCatway(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, repository.ErrCatwayNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Catway non trouvé."))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to get catway %d: %v", number, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, catway)
}

// Create registers a new catway. The number must be unique and the type
// must be one of the two enumerated values.
func (h *CatwayHandler) Create(c *gin.Context) {
	var req struct {
		CatwayNumber *int   `json:"catwayNumber" binding:"required"`
		CatwayType   string `json:"catwayType" binding:"required,catwaytype"`
		CatwayState  string `json:"catwayState" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Données invalides pour le catway."))
		return
	}

	catway, err := h.svc.CreateCatway(c.Request.Context(), *req.CatwayNumber, req.CatwayType, req.CatwayState)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			resp.Fail(c.Writer, resp.BadRequest("Données invalides pour le catway."))
		case errors.Is(err, repository.ErrCatwayNumberTaken):
			resp.Fail(c.Writer, resp.Conflict("Ce numéro de catway existe déjà."))
		default:
			h.logger.Errorf(c.Request.Context(), "failed to create catway: %v", err)
			resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		}
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, catway)
}

// Update changes the state of a catway. catwayState is the only mutable
// field.
func (h *CatwayHandler) Update(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.BadRequest("L'id doit être un nombre."))
		return
	}

	var req struct {
		CatwayState string `json:"catwayState"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("catwayState est obligatoire."))
		return
	}

	catway, err := h.svc.UpdateCatwayState(c.Request.Context(), number, req.CatwayState)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			resp.Fail(c.Writer, resp.BadRequest("catwayState est obligatoire."))
		case errors.Is(err, repository.ErrCatwayNotFound):
			resp.Fail(c.Writer, resp.NotFound("Catway non trouvé."))
		default:
			h.logger.Errorf(c.Request.Context(), "failed to update catway %d: %v", number, err)
			resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		}
		return
	}

	resp.Success(c.Writer, catway)
}

// Delete removes a catway by number. Its reservations are left in place.
func (h *CatwayHandler) Delete(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.BadRequest("L'id doit être un nombre."))
		return
	}

	if err := h.svc.DeleteCatway(c.Request.Context(), number); err != nil {
		if errors.Is(err, repository.ErrCatwayNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Catway non trouvé."))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to delete catway %d: %v", number, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, "Catway supprimé avec succès.")
}
