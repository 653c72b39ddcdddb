package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/DonteRavae/livescript-server/internal/broadcast"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow browser clients from any origin
	},
}

// logUserAgent records which client connected before the upgrade happens.
func logUserAgent(c echo.Context) {
	userAgent := c.Request().UserAgent()
	if userAgent == "" {
		userAgent = "Unknown browser"
	}
	slog.Info("client connected", "user_agent", userAgent, "addr", c.Request().RemoteAddr)
}

func (s *Server) handleBroadcastInit(c echo.Context) error {
	logUserAgent(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return nil
	}

	broadcast.ServeBroadcast(c.Request().Context(), s.registry, conn, c.Request().RemoteAddr, s.clock)
	return nil
}

func (s *Server) handleBroadcastSubscribe(c echo.Context) error {
	logUserAgent(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return nil
	}

	broadcast.ServeSubscribe(c.Request().Context(), s.registry, conn, c.Request().RemoteAddr, s.clock)
	return nil
}
