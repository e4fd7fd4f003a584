package jobs

import (
	"sort"
	"strings"
)

// Vocabulary returns the distinct non-empty values of one categorical column
// across all records, lexicographically ascending with case preserved.
// exclude, when non-empty, drops a sentinel value case-insensitively.
func Vocabulary(records []Record, column, exclude string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		v := r.Field(column)
		if v == "" {
			continue
		}
		if exclude != "" && strings.EqualFold(v, exclude) {
			continue
		}
		seen[v] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Facets are the filter vocabularies a client builds its multiselects from.
// Values are raw categorical codes, never display labels.
type Facets struct {
	Seniority      []string `json:"seniority"`
	JobTypes       []string `json:"jobTypes"`
	RemotePolicies []string `json:"remotePolicies"`
	Companies      []string `json:"companies"`
	Timezones      []string `json:"timezones"`
}

// BuildFacets derives all filter vocabularies from the canonical table. Only
// the seniority vocabulary excludes the "unspecified" sentinel.
func BuildFacets(records []Record) Facets {
	return Facets{
		Seniority:      Vocabulary(records, ColSeniority, SentinelUnspecified),
		JobTypes:       Vocabulary(records, ColJobType, ""),
		RemotePolicies: Vocabulary(records, ColRemotePolicy, ""),
		Companies:      Vocabulary(records, ColCompany, ""),
		Timezones:      Vocabulary(records, ColTimezone, ""),
	}
}
