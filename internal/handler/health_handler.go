package handlers

import "net/http"

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil || h.DB.HealthCheck() != nil {
		WriteError(w, "Database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, HealthResponse{Status: "ok", Database: "up"}, http.StatusOK)
}
