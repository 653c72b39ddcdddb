// Package server implements the HTTP server using Echo framework.
//
// Routes: auth (register/login/logout/refresh with JWT cookies), broadcast
// (WebSocket init/subscribe), health probes and Prometheus metrics.
// Handlers split by domain: handlers_auth.go, handlers_broadcast.go,
// handlers_health.go.
package server
