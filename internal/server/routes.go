package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes (cookie-based JWT sessions)
	s.echo.POST("/auth/register", s.handleRegister)
	s.echo.POST("/auth/login", s.handleLogin)
	s.echo.GET("/auth/logout", s.handleLogout)
	s.echo.GET("/auth/refresh", s.handleRefresh)

	// Broadcast WebSocket routes
	s.echo.GET("/broadcast/init", s.handleBroadcastInit)
	s.echo.GET("/broadcast/subscribe", s.handleBroadcastSubscribe)
}
