package jobs

import (
	"slices"
	"strings"
)

// Criteria is one filter evaluation's worth of user input. The zero value
// matches every record: an empty criterion never restricts, it only stops
// restricting. Categorical selections hold raw codes, not display labels.
type Criteria struct {
	Query          string   // case-insensitive substring of title or company
	Seniority      []string // raw seniority_norm codes
	JobTypes       []string
	RemotePolicies []string
	Companies      []string
	Timezones      []string
	Location       string // case-insensitive substring of location
	Tech           string // case-insensitive substring of any tech_stack field
}

// Apply returns the records satisfying every supplied criterion. Order is
// preserved: filtering never reorders, the canonical sort owns ordering.
func Apply(records []Record, c Criteria) []Record {
	m := c.matcher()
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if m.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// matcher pre-lowers the substring needles once per evaluation.
type matcher struct {
	c        Criteria
	query    string
	location string
	tech     string
}

func (c Criteria) matcher() matcher {
	return matcher{
		c:        c,
		query:    strings.ToLower(strings.TrimSpace(c.Query)),
		location: strings.ToLower(strings.TrimSpace(c.Location)),
		tech:     strings.ToLower(strings.TrimSpace(c.Tech)),
	}
}

// matches is the AND of every supplied criterion.
func (m matcher) matches(r Record) bool {
	if m.query != "" && !containsFold(r.Title, m.query) && !containsFold(r.Company, m.query) {
		return false
	}
	if !inSelection(r.Seniority, m.c.Seniority) {
		return false
	}
	if !inSelection(r.JobType, m.c.JobTypes) {
		return false
	}
	if !inSelection(r.RemotePolicy, m.c.RemotePolicies) {
		return false
	}
	if !inSelection(r.Company, m.c.Companies) {
		return false
	}
	if !inSelection(r.Timezone, m.c.Timezones) {
		return false
	}
	if m.location != "" && !containsFold(r.Location, m.location) {
		return false
	}
	if m.tech != "" {
		hit := false
		for _, col := range TechColumns {
			if containsFold(r.Field(col), m.tech) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// containsFold reports whether haystack contains the already-lowered needle.
// An empty field never contains a non-empty needle.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// inSelection treats an empty selection as "no restriction".
func inSelection(value string, selection []string) bool {
	if len(selection) == 0 {
		return true
	}
	return slices.Contains(selection, value)
}
