package jobs

import (
	"time"

	"github.com/pedrororo/jobs-explorer/internal/apperror"
)

type ListJobsRequest struct {
	Query          string
	Seniority      []string
	JobTypes       []string
	RemotePolicies []string
	Companies      []string
	Timezones      []string
	Location       string
	Tech           string
	Format         string // "json" or "csv"
}

func (r ListJobsRequest) Validate() *apperror.AppError {
	if r.Format != "" && r.Format != "json" && r.Format != "csv" {
		return apperror.New(apperror.BadRequest, "format must be json or csv")
	}
	return nil
}

// Criteria builds the filter criteria for one evaluation of this request.
func (r ListJobsRequest) Criteria() Criteria {
	return Criteria{
		Query:          r.Query,
		Seniority:      r.Seniority,
		JobTypes:       r.JobTypes,
		RemotePolicies: r.RemotePolicies,
		Companies:      r.Companies,
		Timezones:      r.Timezones,
		Location:       r.Location,
		Tech:           r.Tech,
	}
}

type ListJobsResponse struct {
	Total      int            `json:"total"`
	Matched    int            `json:"matched"`
	SnapshotAt time.Time      `json:"snapshotAt"`
	Table      PresentedTable `json:"table"`
}
