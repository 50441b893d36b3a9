package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/odumodamilola/careernest-sub000/internal/api"
	"github.com/odumodamilola/careernest-sub000/internal/api/handlers"
	"github.com/odumodamilola/careernest-sub000/internal/config"
	"github.com/odumodamilola/careernest-sub000/internal/db"
	"github.com/odumodamilola/careernest-sub000/internal/health"
	"github.com/odumodamilola/careernest-sub000/internal/logger"
	"github.com/odumodamilola/careernest-sub000/internal/matching"
	"github.com/odumodamilola/careernest-sub000/internal/repository"
	"github.com/odumodamilola/careernest-sub000/internal/service"
)

func main() {
	// Load and validate configuration first (before logger)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logger)

	logger.Info().
		Str("environment", cfg.Logger.Environment).
		Str("log_level", cfg.Logger.Level).
		Msg("configuration loaded successfully")

	logger.Info().Msg("running database migrations")
	if err := db.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx := context.Background()
	database, err := db.NewDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	logger.Info().Msg("database connected successfully")

	profileRepo := repository.NewProfileRepository(database.Pool)
	interactionRepo := repository.NewInteractionRepository(database.Pool)

	engine := matching.NewEngine()
	matchService := service.NewMatchService(engine, profileRepo, interactionRepo, cfg.Matching.PoolLimit)

	// Replay persisted interaction history so collaborative boosts work
	// from the first request after a restart.
	if err := matchService.Hydrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to hydrate interaction history")
	}

	matchHandler := handlers.NewMatchHandler(matchService, cfg.Matching.DefaultLimit)
	profileHandler := handlers.NewProfileHandler(profileRepo, cfg.Matching.PoolLimit)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(api.RequestIDMiddleware())
	router.Use(api.LoggingMiddleware())
	router.Use(api.CORSMiddleware(cfg.CORS))
	router.Use(api.ErrorHandlerMiddleware())

	router.GET("/health", health.HealthHandler)
	router.GET("/ready", health.ReadinessHandler(database))

	v1 := router.Group("/api/v1")
	{
		profiles := v1.Group("/profiles")
		{
			profiles.POST("", profileHandler.CreateProfile)
			profiles.GET("", profileHandler.ListProfiles)
			profiles.GET("/:id", profileHandler.GetProfile)
			profiles.DELETE("/:id", profileHandler.DeleteProfile)
		}

		matches := v1.Group("/matches")
		{
			matches.POST("/calculate", matchHandler.CalculateMatch)
			matches.POST("/instant", matchHandler.InstantMatches)
		}

		v1.GET("/mentees/:id/matches", matchHandler.MenteeMatches)
		v1.GET("/mentors/:id/mentees", matchHandler.MentorMentees)
		v1.PUT("/users/:id/interactions", matchHandler.UpdateInteractions)
	}

	addr := cfg.GetBindAddress()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Fatal().Err(err).Str("addr", addr).Msg("failed to bind listener")
	}

	srv := &http.Server{
		Addr:    ln.Addr().String(),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited")
}
