package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/pedrororo/jobs-explorer/internal/jobs"
	"github.com/pedrororo/jobs-explorer/internal/platform/sqlite"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSave_And_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	l := &jobs.SnapshotLoad{
		Path:     "data/jobs_latest.csv",
		Token:    "2024-06-01T10:00:00Z",
		Records:  128,
		LoadedAt: time.Date(2024, 6, 1, 10, 0, 5, 0, time.UTC),
	}

	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("save: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("expected non-zero ID")
	}

	loads, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(loads) != 1 {
		t.Fatalf("expected 1 load, got %d", len(loads))
	}
	got := loads[0]
	if got.Path != l.Path || got.Token != l.Token || got.Records != 128 {
		t.Errorf("unexpected load: %+v", got)
	}
	if !got.LoadedAt.Equal(l.LoadedAt) {
		t.Errorf("loadedAt: expected %v, got %v", l.LoadedAt, got.LoadedAt)
	}
}

func TestList_NewestFirstWithLimit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)
	ctx := context.Background()

	for i := range 5 {
		l := &jobs.SnapshotLoad{
			Path:    "data/jobs_latest.csv",
			Token:   time.Date(2024, 6, 1, 10, i, 0, 0, time.UTC).Format(time.RFC3339),
			Records: int64(i),
		}
		if err := repo.Save(ctx, l); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	loads, err := repo.List(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(loads) != 3 {
		t.Fatalf("expected 3 loads, got %d", len(loads))
	}
	if loads[0].Records != 4 || loads[2].Records != 2 {
		t.Errorf("expected newest first, got %+v", loads)
	}
}

func TestSave_DefaultsLoadedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db.DB)

	l := &jobs.SnapshotLoad{Path: "x.csv", Token: "t"}
	if err := repo.Save(context.Background(), l); err != nil {
		t.Fatalf("save: %v", err)
	}
	if l.LoadedAt.IsZero() {
		t.Error("expected LoadedAt to be defaulted")
	}
}
