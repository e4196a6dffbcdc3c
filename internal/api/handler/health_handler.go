package handler

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks that the data directory is usable and, when wired, that Redis
// responds, before declaring the service ready.
type ReadinessHandler struct {
	dataDir string
	redis   *redis.Client // nil when the limiter is not wired
	relaxed bool
}

func NewReadinessHandler(dataDir string, rdb *redis.Client, relaxedWrites bool) *ReadinessHandler {
	return &ReadinessHandler{dataDir: dataDir, redis: rdb, relaxed: relaxedWrites}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Data directory writable ---
	if err := h.probeDataDir(); err != nil {
		if h.relaxed {
			// Relaxed mode serves reads from seeds even when writes fail.
			deps["data_dir"] = dependencyStatus{Status: "read-only", Error: err.Error()}
		} else {
			deps["data_dir"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		}
	} else {
		deps["data_dir"] = dependencyStatus{Status: "ok"}
	}

	// --- Redis ping (only when the rate limiter is wired) ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}

// probeDataDir checks write access by touching and removing a probe file.
func (h *ReadinessHandler) probeDataDir() error {
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		return err
	}
	probe := filepath.Join(h.dataDir, ".ready-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}
