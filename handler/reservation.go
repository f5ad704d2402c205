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

// ReservationHandler handles bookings nested under a catway.
type ReservationHandler struct {
	svc    *service.ReservationService
	logger *logger.Logger
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(svc *service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		svc:    svc,
		logger: log,
	}
}

// List returns all reservations of a catway.
func (h *ReservationHandler) List(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.BadRequest("L'id doit être un nombre."))
		return
	}

	reservations, err := h.svc.ListReservations(c.Request.Context(), number)
	if err != nil {
		h.logger.Errorf(c.Request.Context(), "failed to list reservations for catway %d: %v", number, err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, reservations)
}

// Get returns one reservation, scoped by catway number and reservation id.
func (h *ReservationHandler) Get(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.BadRequest("L'id doit être un nombre."))
		return
	}

	reservation, err := h.svc.GetReservation(c.Request.Context(), number, c.Param("idReservation"))
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Réservation non trouvée."))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to get reservation: %v", err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, reservation)
}

// Create books a catway. An unparseable catway id reads as an unknown
// catway, not a malformed request.
func (h *ReservationHandler) Create(c *gin.Context) {
	number, ok := catwayNumber(c)
	if !ok {
		resp.Fail(c.Writer, resp.NotFound("Ce catway n'existe pas."))
		return
	}

	var req struct {
		ClientName string `json:"clientName"`
		BoatName   string `json:"boatName"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Données invalides."))
		return
	}

	reservation, err := h.svc.CreateReservation(c.Request.Context(), number, repository.ReservationUpdate{
		ClientName: req.ClientName,
		BoatName:   req.BoatName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			resp.Fail(c.Writer, resp.BadRequest("Données invalides."))
		case errors.Is(err, repository.ErrCatwayNotFound):
			resp.Fail(c.Writer, resp.NotFound("Ce catway n'existe pas."))
		default:
			h.logger.Errorf(c.Request.Context(), "failed to create reservation: %v", err)
			resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		}
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, reservation)
}

// Update replaces the mutable fields of a reservation, scoped by both keys.
func (h *ReservationHandler) Update(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, resp.NotFound("Réservation non trouvée."))
		return
	}

	var req struct {
		ClientName string `json:"clientName"`
		BoatName   string `json:"boatName"`
		StartDate  string `json:"startDate"`
		EndDate    string `json:"endDate"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Données invalides."))
		return
	}

	reservation, err := h.svc.UpdateReservation(c.Request.Context(), number, c.Param("idReservation"), repository.ReservationUpdate{
		ClientName: req.ClientName,
		BoatName:   req.BoatName,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	})
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Réservation non trouvée."))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to update reservation: %v", err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, reservation)
}

// Delete removes a reservation, scoped by both keys.
func (h *ReservationHandler) Delete(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.Fail(c.Writer, resp.NotFound("Réservation non trouvée."))
		return
	}

	if err := h.svc.DeleteReservation(c.Request.Context(), number, c.Param("idReservation")); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			resp.Fail(c.Writer, resp.NotFound("Réservation non trouvée."))
			return
		}
		h.logger.Errorf(c.Request.Context(), "failed to delete reservation: %v", err)
		resp.Fail(c.Writer, resp.InternalServer("Erreur serveur"))
		return
	}

	resp.Success(c.Writer, "Réservation supprimée.")
}
