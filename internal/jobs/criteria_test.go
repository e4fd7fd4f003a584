package jobs

import "testing"

func sampleRecords() []Record {
	return []Record{
		{
			Title: "Senior Go Engineer", Company: "Acme", Location: "Berlin, Germany",
			Seniority: "senior", JobType: "full_time", RemotePolicy: "remote_only",
			Timezone: "europe", TechLanguages: "Go, Rust",
		},
		{
			Title: "Senior Data Engineer", Company: "Globex", Location: "Remote - EU",
			Seniority: "senior", JobType: "full_time", RemotePolicy: "hybrid",
			Timezone: "europe", TechData: "Spark, Airflow",
		},
		{
			Title: "Junior Frontend Developer", Company: "Initech", Location: "Austin, TX",
			Seniority: "junior", JobType: "contract", RemotePolicy: "remote_only",
			Timezone: "americas", TechFrameworks: "React",
		},
	}
}

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestApply_EmptyCriteriaReturnsAll(t *testing.T) {
	records := sampleRecords()

	got := Apply(records, Criteria{})

	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i := range records {
		if got[i].Title != records[i].Title {
			t.Fatalf("order changed: expected %v, got %v", titles(records), titles(got))
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	c := Criteria{Seniority: []string{"senior"}}

	once := Apply(sampleRecords(), c)
	twice := Apply(once, c)

	if len(once) != len(twice) {
		t.Fatalf("filtering not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Title != twice[i].Title {
			t.Fatalf("filtering not idempotent: %v vs %v", titles(once), titles(twice))
		}
	}
}

func TestApply_CategoricalSelectionsAreANDed(t *testing.T) {
	got := Apply(sampleRecords(), Criteria{
		Seniority:      []string{"senior"},
		RemotePolicies: []string{"remote_only"},
	})

	if len(got) != 1 || got[0].Title != "Senior Go Engineer" {
		t.Fatalf("expected only the senior remote_only row, got %v", titles(got))
	}
}

func TestApply_QueryMatchesTitleOrCompany(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title substring", "engineer", []string{"Senior Go Engineer", "Senior Data Engineer"}},
		{"company substring", "globex", []string{"Senior Data Engineer"}},
		{"case insensitive", "SENIOR", []string{"Senior Go Engineer", "Senior Data Engineer"}},
		{"no match", "haskell", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Apply(sampleRecords(), Criteria{Query: tt.query}))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestApply_TechSearchIsORAcrossFields(t *testing.T) {
	// "rust" lives only in tech_stack.languages of the first record; other
	// tech fields being empty must not block the match.
	got := Apply(sampleRecords(), Criteria{Tech: "rust"})
	if len(got) != 1 || got[0].Title != "Senior Go Engineer" {
		t.Fatalf("expected Senior Go Engineer, got %v", titles(got))
	}

	// Matches in a different tech field are equally valid.
	got2 := Apply(sampleRecords(), Criteria{Tech: "airflow"})
	if len(got2) != 1 || got2[0].Title != "Senior Data Engineer" {
		t.Fatalf("expected Senior Data Engineer, got %v", titles(got2))
	}
}

func TestApply_LocationSubstring(t *testing.T) {
	got := Apply(sampleRecords(), Criteria{Location: "germany"})
	if len(got) != 1 || got[0].Title != "Senior Go Engineer" {
		t.Fatalf("expected the Berlin row, got %v", titles(got))
	}
}

func TestApply_EmptyFieldNeverMatchesNonEmptyNeedle(t *testing.T) {
	records := []Record{{Title: "Dev"}} // every other field empty

	if got := Apply(records, Criteria{Location: "berlin"}); len(got) != 0 {
		t.Errorf("empty location matched non-empty query")
	}
	if got := Apply(records, Criteria{Tech: "go"}); len(got) != 0 {
		t.Errorf("empty tech fields matched non-empty query")
	}
	// An empty query always matches, empty field or not.
	if got := Apply(records, Criteria{Location: ""}); len(got) != 1 {
		t.Errorf("empty query must match everything")
	}
}

func TestApply_SelectionAgainstRawCodes(t *testing.T) {
	// Display label for remote_only is "Remote only"; selecting by label must
	// not match, only the raw code does.
	if got := Apply(sampleRecords(), Criteria{RemotePolicies: []string{"Remote only"}}); len(got) != 0 {
		t.Fatalf("selection matched display label, want raw-code matching only")
	}
	if got := Apply(sampleRecords(), Criteria{RemotePolicies: []string{"remote_only"}}); len(got) != 2 {
		t.Fatalf("expected 2 remote_only rows, got %v", titles(got))
	}
}
