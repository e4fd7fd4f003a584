package jobs

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pedrororo/jobs-explorer/internal/snapshot"
)

// Accepted posted_at layouts, tried in order. Everything is normalized to UTC
// before comparison so mixed-zone snapshots sort correctly.
var postedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize builds the canonical record set from a raw snapshot table:
// missing optional columns become empty strings, salary fields are coerced
// to numbers (absent on failure), posted_at is parsed into a sortable
// instant plus a YYYY-MM-DD display date, and the result is sorted newest
// first. Field-level parse failures never fail a row.
func Normalize(t *snapshot.Table) []Record {
	idx := make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		idx[c] = i
	}

	field := func(row []string, column string) string {
		i, ok := idx[column]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]Record, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := Record{
			Title:          field(row, ColTitle),
			Company:        field(row, ColCompany),
			Location:       field(row, ColLocation),
			Seniority:      field(row, ColSeniority),
			JobType:        field(row, ColJobType),
			RemotePolicy:   field(row, ColRemotePolicy),
			Timezone:       field(row, ColTimezone),
			TechLanguages:  field(row, ColTechLanguages),
			TechFrameworks: field(row, ColTechFrameworks),
			TechData:       field(row, ColTechData),
			TechCloud:      field(row, ColTechCloud),
			TechML:         field(row, ColTechML),
			PostedAt:       field(row, ColPostedAt),
			Source:         field(row, ColSource),
			Link:           field(row, ColLink),
		}

		r.SalaryMin = parseSalary(field(row, ColSalaryMin))
		r.SalaryMax = parseSalary(field(row, ColSalaryMax))
		r.SalaryAnnMin = parseSalary(field(row, ColSalaryAnnMin))
		r.SalaryAnnMax = parseSalary(field(row, ColSalaryAnnMax))

		r.PostedSortKey, r.PostedDate = parsePostedAt(r.PostedAt)

		records = append(records, r)
	}

	// Newest first; rows without a sort key go last, keeping their original
	// relative order.
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].PostedSortKey, records[j].PostedSortKey
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return records
}

func parseSalary(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parsePostedAt returns the sortable instant and the display date derived
// from a raw timestamp. Both are absent together when nothing parses.
func parsePostedAt(s string) (*time.Time, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ""
	}
	for _, layout := range postedAtLayouts {
		ts, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		utc := ts.UTC()
		return &utc, utc.Format(time.DateOnly)
	}
	return nil, ""
}
