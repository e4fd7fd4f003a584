package jobs

import "testing"

func TestPresent_ColumnsAndLabels(t *testing.T) {
	records := []Record{
		{
			Title: "Dev", Company: "Acme", Location: "Berlin",
			Seniority: "senior", JobType: "full_time", RemotePolicy: "remote_only",
			Timezone: "europe", PostedDate: "2024-03-05",
			Source: "weworkremotely", Link: "https://example.com/jobs/1",
		},
	}

	table := Present(records)

	wantColumns := []string{
		"Title", "Company", "Location", "Seniority", "Job type",
		"Remote policy", "Timezone overlap", "Posted", "Source", "Link",
	}
	if len(table.Columns) != len(wantColumns) {
		t.Fatalf("expected columns %v, got %v", wantColumns, table.Columns)
	}
	for i := range wantColumns {
		if table.Columns[i] != wantColumns[i] {
			t.Fatalf("expected columns %v, got %v", wantColumns, table.Columns)
		}
	}

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row[3] != "Senior" {
		t.Errorf("seniority label: expected Senior, got %q", row[3])
	}
	if row[5] != "Remote only" {
		t.Errorf("remote policy label: expected Remote only, got %q", row[5])
	}
	if row[7] != "2024-03-05" {
		t.Errorf("posted column must carry the derived date, got %q", row[7])
	}
}

func TestPresent_UnmappedCodeFallsBackToReadableForm(t *testing.T) {
	records := []Record{
		{Seniority: "vp_engineering", RemotePolicy: "remote-first"},
	}

	row := Present(records).Rows[0]

	if row[3] != "Vp Engineering" {
		t.Errorf("expected humanized seniority code, got %q", row[3])
	}
	if row[5] != "Remote First" {
		t.Errorf("expected humanized remote policy code, got %q", row[5])
	}
}

func TestPresent_EmptyCodeStaysEmpty(t *testing.T) {
	row := Present([]Record{{Title: "Dev"}}).Rows[0]
	if row[3] != "" || row[5] != "" {
		t.Errorf("empty codes must not be labeled, got seniority=%q remote=%q", row[3], row[5])
	}
}

func TestPresent_PreservesRowOrder(t *testing.T) {
	records := []Record{{Title: "b"}, {Title: "a"}, {Title: "c"}}
	table := Present(records)
	for i, want := range []string{"b", "a", "c"} {
		if table.Rows[i][0] != want {
			t.Fatalf("row order changed: row %d = %q, want %q", i, table.Rows[i][0], want)
		}
	}
}
