package jobs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The presented projection: which canonical columns appear, in which order,
// under which display label.
var presentedColumns = []struct {
	key   string
	label string
}{
	{ColTitle, "Title"},
	{ColCompany, "Company"},
	{ColLocation, "Location"},
	{ColSeniority, "Seniority"},
	{ColJobType, "Job type"},
	{ColRemotePolicy, "Remote policy"},
	{ColTimezone, "Timezone overlap"},
	{ColPostedDate, "Posted"},
	{ColSource, "Source"},
	{ColLink, "Link"},
}

var seniorityLabels = map[string]string{
	"intern":      "Intern",
	"junior":      "Junior",
	"mid":         "Mid-level",
	"senior":      "Senior",
	"staff":       "Staff",
	"lead":        "Lead",
	"principal":   "Principal",
	"unspecified": "Unspecified",
}

var remotePolicyLabels = map[string]string{
	"remote_only":     "Remote only",
	"remote_friendly": "Remote friendly",
	"hybrid":          "Hybrid",
	"onsite":          "On-site",
}

var titleCaser = cases.Title(language.English)

// humanizeCode renders a categorical code that has no mapped label:
// separators become spaces and words are title-cased, so "remote_first"
// shows as "Remote First" instead of failing.
func humanizeCode(code string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(code)
	return titleCaser.String(s)
}

func labelFor(table map[string]string, code string) string {
	if code == "" {
		return ""
	}
	if label, ok := table[code]; ok {
		return label
	}
	return humanizeCode(code)
}

// PresentedTable is the display/export projection of a filtered record set:
// column labels plus stringly-typed rows, exactly as shown to the user.
type PresentedTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Present projects records into the fixed display column set, mapping
// seniority and remote-policy codes through their label tables. Row order is
// the input order.
func Present(records []Record) PresentedTable {
	columns := make([]string, len(presentedColumns))
	for i, c := range presentedColumns {
		columns[i] = c.label
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := make([]string, len(presentedColumns))
		for i, c := range presentedColumns {
			switch c.key {
			case ColSeniority:
				row[i] = labelFor(seniorityLabels, r.Seniority)
			case ColRemotePolicy:
				row[i] = labelFor(remotePolicyLabels, r.RemotePolicy)
			default:
				row[i] = r.Field(c.key)
			}
		}
		rows = append(rows, row)
	}

	return PresentedTable{Columns: columns, Rows: rows}
}
