package main

import (
	"net/http"
	"time"

	"github.com/Beka01247/coffee-order/internal/queue"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// healthCheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Reports the database, the sync lock store and the broker
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"database": statusOK,
		"sync":     statusOK,
		"queue":    statusOK,
	}

	if app.storage != nil {
		if err := app.storage.Ping(r.Context()); err != nil {
			app.logger.Warnw("database ping failed", "error", err)
			services["database"] = statusError
		}
	}

	if app.syncService != nil {
		if _, err := app.syncService.InProgress(r.Context()); err != nil {
			app.logger.Warnw("sync lock check failed", "error", err)
			services["sync"] = statusError
		}
	}

	if hc, ok := app.broker.(queue.HealthChecker); ok {
		if err := hc.Healthy(); err != nil {
			app.logger.Warnw("broker unhealthy", "error", err)
			services["queue"] = statusError
		}
	}

	response := HealthResponse{
		Status:    "healthy",
		Version:   version,
		Timestamp: app.clock.Now(),
		Services:  services,
	}

	status := http.StatusOK
	for _, s := range services {
		if s != statusOK {
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			break
		}
	}

	if err := writeJson(w, status, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
