package api

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/0xPuncker/job-grid/internal/jobs"
	"github.com/0xPuncker/job-grid/pkg/types"
	"github.com/0xPuncker/job-grid/pkg/utils"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// JobsService serves the cached job grid.
type JobsService interface {
	Jobs(ctx context.Context) []types.JobRecord
	Status() jobs.Status
}

// JobLister reports the scheduled background jobs.
type JobLister interface {
	ListJobs() []types.ScheduledJob
	GetJobStatus(name string) (bool, string, error)
	IsRunning() bool
}

type Handler struct {
	service   JobsService
	scheduler JobLister
	logger    *logrus.Logger
	staticDir string
}

type HealthResponse struct {
	Status     string `json:"status"`
	CachedJobs int    `json:"cachedJobs"`
	LastUpdate int64  `json:"lastUpdate"`
}

func NewHandler(service JobsService, scheduler JobLister, logger *logrus.Logger, staticDir string) *Handler {
	return &Handler{
		service:   service,
		scheduler: scheduler,
		logger:    logger,
		staticDir: staticDir,
	}
}

// GetJobs always answers 200; failures upstream degrade to fallback jobs.
func (h *Handler) GetJobs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.Jobs(r.Context()))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()
	h.writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		CachedJobs: status.CachedJobs,
		LastUpdate: utils.EpochMillis(status.LastUpdate),
	})
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	scheduled := []types.ScheduledJob{}
	running := false
	if h.scheduler != nil {
		scheduled = h.scheduler.ListJobs()
		running = h.scheduler.IsRunning()
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":        scheduled,
		"active_jobs": len(scheduled),
		"running":     running,
	})
}

func (h *Handler) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if h.scheduler == nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "job " + name + " not found"})
		return
	}

	enabled, description, err := h.scheduler.GetJobStatus(name)
	if err != nil {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":        name,
		"enabled":     enabled,
		"description": description,
		"running":     h.scheduler.IsRunning(),
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
