package health

import (
	"net/http"

	"github.com/dalemusser/dojosite/internal/app/system/gallery"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Gallery *gallery.Controller
	Log     *zap.Logger
}

// NewHandler constructs a health Handler for the startup gallery controller.
func NewHandler(g *gallery.Controller, logger *zap.Logger) *Handler {
	return &Handler{
		Gallery: g,
		Log:     logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Gallery  string `json:"gallery"`
	Projects int    `json:"projects"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "gallery":"ready", "projects":12 }
//
// When the project list failed to load: 503 and
//
//	{ "status":"error", "gallery":"error", "message":"Projects unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	state := h.Gallery.State()
	resp := healthResponse{
		Status:   "ok",
		Gallery:  state.String(),
		Projects: len(h.Gallery.Projects()),
	}

	if state != gallery.StateReady {
		resp.Status = "error"
		resp.Message = "Projects unavailable"
		if le := h.Gallery.Err(); le != nil {
			resp.Error = le.Error()
		}
		h.Log.Warn("health-check: gallery not ready", zap.String("gallery", resp.Gallery))
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Error("health-check: encode failed", zap.Error(err))
	}
}
