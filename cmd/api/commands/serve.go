package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/port-russell/marina-api/config"
	"github.com/port-russell/marina-api/data"
	"github.com/port-russell/marina-api/handler"
	"github.com/port-russell/marina-api/logging/logger"
	"github.com/port-russell/marina-api/middleware"
	"github.com/port-russell/marina-api/service"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := newApp(configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}

// App represents the HTTP server application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	data    *data.Data
	service *service.Service
	handler *handler.Handler
	server  *http.Server
}

// newApp assembles the application with manual dependency injection.
func newApp(configFile string) (*App, func(), error) {
	cfg, log, dataLayer, cleanup, err := bootstrap(configFile)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewService(dataLayer, cfg, log)
	h := handler.NewHandler(svc, cfg.AppName, log)

	app := &App{
		config:  cfg,
		logger:  log,
		data:    dataLayer,
		service: svc,
		handler: h,
	}

	return app, cleanup, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	if a.config.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// The demo credentials must work against an empty database.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := a.service.User.EnsureAdminUser(ctx, a.config.Admin); err != nil {
		a.logger.Errorf(ctx, "failed to ensure admin user: %v", err)
	}
	cancel()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.RequestLogger(a.logger))

	a.handler.RegisterRoutes(router, a.service.Auth)

	a.server = &http.Server{
		Addr:         a.config.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		a.logger.Infof(context.Background(), "starting server on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(context.Background(), "server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info(context.Background(), "shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Errorf(shutdownCtx, "server forced to shutdown: %v", err)
		return fmt.Errorf("server shutdown: %w", err)
	}

	a.logger.Info(context.Background(), "server exited")
	return nil
}
