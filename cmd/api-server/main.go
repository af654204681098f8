package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChenTim1011/DB-Final-Project/internal/config"
	"github.com/ChenTim1011/DB-Final-Project/internal/database"
	"github.com/ChenTim1011/DB-Final-Project/internal/handler"
	"github.com/ChenTim1011/DB-Final-Project/internal/middleware"
	"github.com/ChenTim1011/DB-Final-Project/internal/repository"
	"github.com/ChenTim1011/DB-Final-Project/internal/service"
	"github.com/ChenTim1011/DB-Final-Project/web"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Connect to the database and bring the schema up to date
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// Wire repositories, services and handlers
	bookRepo := repository.NewBookRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	planRepo := repository.NewPlanRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	bookSvc := service.NewBookService(bookRepo, noteRepo, historyRepo, planRepo, favoriteRepo, cfg.CascadeDelete)
	historySvc := service.NewHistoryService(historyRepo)
	planSvc := service.NewPlanService(planRepo)
	noteSvc := service.NewNoteService(noteRepo, bookRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, bookRepo)

	root := r.Group("/")
	handler.NewBookHandler(bookSvc).RegisterRoutes(root)
	handler.NewHistoryHandler(historySvc).RegisterRoutes(root)
	handler.NewPlanHandler(planSvc).RegisterRoutes(root)
	handler.NewNoteHandler(noteSvc).RegisterRoutes(root)
	handler.NewFavoriteHandler(favoriteSvc).RegisterRoutes(root)
	handler.NewViewHandler(bookSvc, historySvc, planSvc, favoriteSvc).RegisterRoutes(root)

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})
	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	logger.Info("server started", "addr", addr, "env", cfg.GoEnv)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		log.Fatalf("server error: %v", err)
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
