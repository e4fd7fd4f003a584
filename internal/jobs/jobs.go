package jobs

import (
	"context"
	"time"
)

// Canonical column names of the jobs snapshot.
const (
	ColTitle          = "title"
	ColCompany        = "company"
	ColLocation       = "location"
	ColSeniority      = "seniority_norm"
	ColJobType        = "job_type"
	ColRemotePolicy   = "remote_policy"
	ColTimezone       = "timezone_overlap"
	ColTechLanguages  = "tech_stack.languages"
	ColTechFrameworks = "tech_stack.frameworks"
	ColTechData       = "tech_stack.data"
	ColTechCloud      = "tech_stack.cloud"
	ColTechML         = "tech_stack.ml"
	ColSalaryMin      = "salary_min"
	ColSalaryMax      = "salary_max"
	ColSalaryAnnMin   = "salary_annual_min"
	ColSalaryAnnMax   = "salary_annual_max"
	ColPostedAt       = "posted_at"
	ColPostedDate     = "posted_date"
	ColSource         = "source"
	ColLink           = "link"
)

// OptionalColumns are synthesized as empty strings when the source omits
// them, so no downstream code has to check column presence.
var OptionalColumns = []string{
	ColSeniority,
	ColLocation,
	ColRemotePolicy,
	ColTimezone,
	ColJobType,
	ColTechLanguages,
	ColTechFrameworks,
	ColTechData,
	ColTechCloud,
	ColTechML,
}

// TechColumns are searched together by the tech-stack OR filter.
var TechColumns = []string{
	ColTechLanguages,
	ColTechFrameworks,
	ColTechData,
	ColTechCloud,
	ColTechML,
}

// SentinelUnspecified is a reserved seniority code kept out of the seniority
// vocabulary. Matched case-insensitively.
const SentinelUnspecified = "unspecified"

// Record is one row of the canonical table. Every text field is always
// present (possibly empty); salary fields are nil when the source value did
// not parse as a number.
type Record struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Seniority    string `json:"seniority"`
	JobType      string `json:"jobType"`
	RemotePolicy string `json:"remotePolicy"`
	Timezone     string `json:"timezoneOverlap"`

	TechLanguages  string `json:"techLanguages"`
	TechFrameworks string `json:"techFrameworks"`
	TechData       string `json:"techData"`
	TechCloud      string `json:"techCloud"`
	TechML         string `json:"techML"`

	SalaryMin    *float64 `json:"salaryMin,omitempty"`
	SalaryMax    *float64 `json:"salaryMax,omitempty"`
	SalaryAnnMin *float64 `json:"salaryAnnualMin,omitempty"`
	SalaryAnnMax *float64 `json:"salaryAnnualMax,omitempty"`

	PostedAt      string     `json:"postedAt,omitempty"`
	PostedSortKey *time.Time `json:"-"`
	PostedDate    string     `json:"postedDate"`

	Source string `json:"source"`
	Link   string `json:"link"`
}

// Field returns the value of a canonical text column by name. Salary columns
// are numeric and not addressable this way.
func (r Record) Field(column string) string {
	switch column {
	case ColTitle:
		return r.Title
	case ColCompany:
		return r.Company
	case ColLocation:
		return r.Location
	case ColSeniority:
		return r.Seniority
	case ColJobType:
		return r.JobType
	case ColRemotePolicy:
		return r.RemotePolicy
	case ColTimezone:
		return r.Timezone
	case ColTechLanguages:
		return r.TechLanguages
	case ColTechFrameworks:
		return r.TechFrameworks
	case ColTechData:
		return r.TechData
	case ColTechCloud:
		return r.TechCloud
	case ColTechML:
		return r.TechML
	case ColPostedAt:
		return r.PostedAt
	case ColPostedDate:
		return r.PostedDate
	case ColSource:
		return r.Source
	case ColLink:
		return r.Link
	default:
		return ""
	}
}

// SnapshotLoad records one canonical-table rebuild.
type SnapshotLoad struct {
	ID       int64     `json:"id"`
	Path     string    `json:"path"`
	Token    string    `json:"token"`
	Records  int64     `json:"records"`
	LoadedAt time.Time `json:"loadedAt"`
}

// HistoryRepository persists snapshot load events.
type HistoryRepository interface {
	Save(ctx context.Context, l *SnapshotLoad) error
	List(ctx context.Context, limit int) ([]SnapshotLoad, error)
}
