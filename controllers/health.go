package controllers

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Pinger checks that a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the SPARQL endpoint answers.
func HealthHandler(p Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := p.Ping(r.Context()); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			encodeJSON(w, logger, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		encodeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	}
}
