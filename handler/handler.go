// Package handler exposes the HTTP surface and maps service failures onto
// the error taxonomy of the API.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/port-russell/marina-api/data/repository"
	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/middleware"
	"github.com/port-russell/marina-api/net/resp"
	"github.com/port-russell/marina-api/service"
	"github.com/port-russell/marina-api/version"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Catway      *CatwayHandler
	Reservation *ReservationHandler

	appName string
	logger  *logger.Logger
}

// NewHandler creates a new handler instance with all sub-handlers
// initialized.
func NewHandler(svc *service.Service, appName string, log *logger.Logger) *Handler {
	registerValidations()

	return &Handler{
		Auth:        NewAuthHandler(svc.Auth, log),
		User:        NewUserHandler(svc.User, log),
		Catway:      NewCatwayHandler(svc.Catway, log),
		Reservation: NewReservationHandler(svc.Reservation, log),
		appName:     appName,
		logger:      log,
	}
}

// registerValidations adds the catway type rule to gin's validator engine.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("catwaytype", func(fl validator.FieldLevel) bool {
			t := fl.Field().String()
			return t == repository.CatwayTypeLong || t == repository.CatwayTypeShort
		})
	}
}

// RegisterRoutes registers all HTTP routes. Everything except the landing
// page, the health check and the auth endpoints sits behind the session
// guard.
func (h *Handler) RegisterRoutes(r *gin.Engine, authSvc *service.AuthService) {
	r.GET("/", h.Landing)
	r.GET("/health", h.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.GET("/logout", h.Auth.Logout)
	}

	guard := middleware.Auth(authSvc, h.logger)

	users := r.Group("/users", guard)
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:email", h.User.Get)
		users.PUT("/:email", h.User.Update)
		users.DELETE("/:email", h.User.Delete)
	}

	catways := r.Group("/catways", guard)
	{
		catways.GET("", h.Catway.List)
		catways.POST("", h.Catway.Create)
		catways.GET("/:id", h.Catway.Get)
		catways.PUT("/:id", h.Catway.Update)
		catways.DELETE("/:id", h.Catway.Delete)

		catways.GET("/:id/reservations", h.Reservation.List)
		catways.POST("/:id/reservations", h.Reservation.Create)
		catways.GET("/:id/reservations/:idReservation", h.Reservation.Get)
		catways.PUT("/:id/reservations/:idReservation", h.Reservation.Update)
		catways.DELETE("/:id/reservations/:idReservation", h.Reservation.Delete)
	}
}

// Landing serves the public landing route.
func (h *Handler) Landing(c *gin.Context) {
	resp.Success(c.Writer, map[string]string{
		"name":    h.appName,
		"message": "Bienvenue sur l'API du port de plaisance Russell",
	})
}

// Health serves the health check endpoint.
func (h *Handler) Health(c *gin.Context) {
	resp.Success(c.Writer, map[string]string{
		"status":  "ok",
		"version": version.GetVersionInfo().Version,
	})
}
