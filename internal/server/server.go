package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DonteRavae/livescript-server/internal/auth"
	"github.com/DonteRavae/livescript-server/internal/broadcast"
	"github.com/DonteRavae/livescript-server/internal/config"
	"github.com/DonteRavae/livescript-server/internal/domain"
	"github.com/DonteRavae/livescript-server/internal/errors"
)

// dbPinger is a minimal interface for PostgreSQL health checks
type dbPinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo     *echo.Echo
	config   *config.Config
	auth     domain.AuthService
	tokens   *auth.Manager
	registry *broadcast.Registry
	db       dbPinger
	clock    clockwork.Clock
}

func NewServer(cfg *config.Config, authService domain.AuthService, tokens *auth.Manager, registry *broadcast.Registry, db dbPinger, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(errors.Middleware())

	srv := &Server{
		echo:     e,
		config:   cfg,
		auth:     authService,
		tokens:   tokens,
		registry: registry,
		db:       db,
		clock:    clock,
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("starting server", "port", s.config.Port)
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
