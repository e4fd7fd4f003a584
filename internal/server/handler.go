package server

import (
	"net/http"
	"strconv"

	"github.com/pedrororo/jobs-explorer/internal/apperror"
	"github.com/pedrororo/jobs-explorer/internal/jobs"
)

type handler struct {
	jobSvc *jobs.Service
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listJobsRequest builds the filter request from query parameters.
// Multiselect parameters repeat: ?seniority=senior&seniority=lead.
func listJobsRequest(r *http.Request) jobs.ListJobsRequest {
	q := r.URL.Query()
	return jobs.ListJobsRequest{
		Query:          q.Get("q"),
		Seniority:      q["seniority"],
		JobTypes:       q["jobType"],
		RemotePolicies: q["remotePolicy"],
		Companies:      q["company"],
		Timezones:      q["timezone"],
		Location:       q.Get("location"),
		Tech:           q.Get("tech"),
		Format:         q.Get("format"),
	}
}

func (h *handler) listJobs(w http.ResponseWriter, r *http.Request) {
	req := listJobsRequest(r)

	if appErr := req.Validate(); appErr != nil {
		writeError(w, appErr.HTTPStatus(), appErr.Message())
		return
	}

	if req.Format == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=filtered_jobs.csv")
		if err := h.jobSvc.Export(r.Context(), req, w); err != nil {
			// Export resolves the snapshot before streaming, so failures
			// surface here before the body has been written.
			if ae, ok := err.(*apperror.AppError); ok {
				writeError(w, ae.HTTPStatus(), ae.Message())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp, err := h.jobSvc.List(r.Context(), req)
	if err != nil {
		if ae, ok := err.(*apperror.AppError); ok {
			writeError(w, ae.HTTPStatus(), ae.Message())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.jobSvc.Facets(r.Context())
	if err != nil {
		if ae, ok := err.(*apperror.AppError); ok {
			writeError(w, ae.HTTPStatus(), ae.Message())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, facets)
}

func (h *handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	loads, err := h.jobSvc.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, loads)
}
