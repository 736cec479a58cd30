package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"luckycat.backend/internal/interfaces/http/response"
)

// Pinger checks the liveness of a backing service
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health. Either dependency may be nil when
// not configured.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check reports overall health with a per-dependency breakdown. Degraded
// dependencies turn the response into a 503 so load balancers rotate the
// instance out.
// GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{}

	for name, dep := range map[string]Pinger{"database": h.db, "redis": h.cache} {
		if dep == nil {
			continue
		}
		if err := dep.Ping(c.Request.Context()); err != nil {
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}

	body := gin.H{"status": "ok", "checks": checks}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	response.Success(c, status, body)
}
