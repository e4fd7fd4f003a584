package server

import (
	"net/http"

	"github.com/pedrororo/jobs-explorer/internal/jobs"
)

// NewHandler creates the full HTTP handler with routes and middleware.
// Exported for use in tests (e.g., httptest.NewServer).
func NewHandler(jobSvc *jobs.Service) http.Handler {
	return newMux(jobSvc)
}

func newMux(jobSvc *jobs.Service) http.Handler {
	h := &handler{
		jobSvc: jobSvc,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /api/v1/jobs", h.listJobs)
	mux.HandleFunc("GET /api/v1/jobs/facets", h.facets)
	mux.HandleFunc("GET /api/v1/snapshots", h.listSnapshots)

	// Apply middleware stack: recovery -> requestID -> logging
	var handler http.Handler = mux
	handler = logging(handler)
	handler = requestID(handler)
	handler = recovery(handler)

	return handler
}
