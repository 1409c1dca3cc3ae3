// Package main is the entry point for the flight tower proxy.
//
//	@title						Flight Tower Proxy API
//	@version					1.0.0
//	@description				Forwards browser requests for nearby flights, flight details and IP geolocation to the flight-data backend.
//
//	@contact.name				API Support
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-tower/flight-tower/docs"

	"github.com/flight-tower/flight-tower/internal/adapter/backend"
	flighthttp "github.com/flight-tower/flight-tower/internal/adapter/http"
	"github.com/flight-tower/flight-tower/internal/adapter/http/middleware"
	"github.com/flight-tower/flight-tower/internal/config"
	"github.com/flight-tower/flight-tower/internal/infrastructure/logger"
	"github.com/flight-tower/flight-tower/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("backend_configured", cfg.BackendConfigured()).
		Bool("cors_enabled", cfg.CORSEnabled()).
		Msg("Configuration loaded")

	if !cfg.BackendConfigured() {
		log.Warn().Msg("BACKEND_BASE_URL is empty; forwarding endpoints will answer 500 until it is set")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = flighthttp.ErrorHandler

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithOptions(e, log.Logger, middleware.Options{
		Recovery:     middleware.RecoveryConfig{DisablePrintStack: cfg.IsProduction()},
		AllowOrigins: cfg.CORS.AllowOrigins,
	})

	setupRoutes(e, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupLogger builds the process logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.Logging.Caller,
		ServiceName:  cfg.Logging.ServiceName,
	})
	logger.SetGlobal(l)
	return l
}

// setupRoutes wires the forwarding chain and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	locator := backend.NewStaticLocator(cfg.Backend.BaseURL)
	caller := backend.NewClient(backend.NewHTTPClient())

	tracker := usecase.NewFlightTracker(locator, backend.NewRequests(), caller, &usecase.Config{
		FlightTimeout: cfg.Backend.FlightTimeout,
		GeoTimeout:    cfg.Backend.GeoTimeout,
	})

	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(tracker))

	if !cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
