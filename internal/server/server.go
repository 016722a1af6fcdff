// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: handlers, services, stores, and middleware
// are all wired together here, in one place, rather than scattered across
// the codebase. main.go only loads configuration and calls New + Start.
//
// DEPENDENCY CHAIN:
//
//	config.Config → stores (jsonfile / sqlite) → services → handlers → routes
//
// Each layer only receives what it needs: services get store interfaces,
// handlers get services, and nothing below the handler layer knows HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/config"
	"github.com/sakif/nusantara-stories/internal/handler"
	"github.com/sakif/nusantara-stories/internal/middleware"
	"github.com/sakif/nusantara-stories/internal/repository"
	"github.com/sakif/nusantara-stories/internal/repository/jsonfile"
	sqliteRepo "github.com/sakif/nusantara-stories/internal/repository/sqlite"
	"github.com/sakif/nusantara-stories/internal/service"
)

// Server holds the router and the resources it owns. The sqlite handle is
// nil when the catalog runs on the flat file; when present it's closed
// during shutdown.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New wires the full dependency graph from configuration.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
	}

	// === STORES ===
	users := jsonfile.NewUserStore(cfg.UsersPath, logger)

	var catalog repository.StoryCatalog
	switch cfg.StoriesDriver {
	case "sqlite":
		db, err := sqliteRepo.New(cfg.StoriesDB)
		if err != nil {
			return nil, fmt.Errorf("opening story catalog: %w", err)
		}
		s.db = db
		catalog = db
	default:
		catalog = jsonfile.NewStoryCatalog(cfg.StoriesPath, logger)
	}

	// === AUTH PRIMITIVES ===
	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		s.closeDB()
		return nil, fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	// === SERVICES ===
	authSvc := service.NewAuthService(users, passwords, tokens, logger)
	profileSvc := service.NewProfileService(users, passwords, logger)
	favoriteSvc := service.NewFavoriteService(users, catalog, logger)
	storySvc := service.NewStoryService(catalog)

	// === HANDLERS ===
	authHandler := handler.NewAuthHandler(authSvc, logger)
	profileHandler := handler.NewProfileHandler(profileSvc, logger)
	favoritesHandler := handler.NewFavoritesHandler(favoriteSvc, logger)
	storyHandler := handler.NewStoryHandler(storySvc, logger)

	// === MIDDLEWARE ===
	// Order matters: RequestID and RealIP first so the logger sees them,
	// Recoverer turns panics into 500s instead of killing the process.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(logger))
	s.router.Use(middleware.CORS)

	// === PUBLIC ROUTES ===
	s.router.Get("/", handler.HandleRoot)
	s.router.Post("/register", authHandler.HandleRegister)
	s.router.Post("/login", authHandler.HandleLogin)
	s.router.Get("/api/stories/{id}", storyHandler.HandleGetByID)

	// === PROTECTED ROUTES ===
	// Everything in this group passes the auth gate: 401 when no bearer
	// token is presented, 403 when the token doesn't verify.
	s.router.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(tokens))

		r.Get("/api/profile", profileHandler.HandleGet)
		r.Put("/api/profile", profileHandler.HandleUpdate)
		r.Put("/api/password", profileHandler.HandleChangePassword)

		r.Get("/api/favorites", favoritesHandler.HandleList)
		r.Get("/api/favorites/status/{storyId}", favoritesHandler.HandleStatus)
		r.Post("/api/favorites/{storyId}", favoritesHandler.HandleAdd)
		r.Delete("/api/favorites/{storyId}", favoritesHandler.HandleRemove)
	})

	return s, nil
}

// Router exposes the configured router — used by tests to drive the full
// HTTP stack through httptest without opening a real port.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30
// seconds to finish, close the catalog database if one is open.
func (s *Server) Start() error {
	defer s.closeDB()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.cfg.Port),
			slog.String("usersPath", s.cfg.UsersPath),
			slog.String("storiesDriver", s.cfg.StoriesDriver),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}

func (s *Server) closeDB() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Warn("closing story catalog", slog.String("error", err.Error()))
		}
		s.db = nil
	}
}
