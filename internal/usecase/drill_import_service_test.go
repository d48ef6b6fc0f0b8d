package usecase

import (
	"errors"
	"testing"

	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func TestDrillImportService_Import(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(nil)
	svc := NewDrillImportService(repo, f.hierarchy, f.ids, 0)

	result, err := svc.Import(t.Context(), memory.ClubIDNorthside, "", "", DrillImportInput{
		Rows: []DrillInput{
			{Name: "Wall Passes", Category: "Technical", DurationMinutes: 10},
			{Name: "", Category: "Technical"}, // invalid: no name
			{Name: "Cone Slalom", Category: "Conditioning", DurationMinutes: 12},
		},
		MaxWorkers: 2,
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if result.RowCount != 3 || result.SuccessCount != 2 || result.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.WorkerCount != 2 {
		t.Fatalf("unexpected worker count: %d", result.WorkerCount)
	}
	if len(result.Rows) != 3 || result.Rows[0].Index != 0 || result.Rows[2].Index != 2 {
		t.Fatalf("rows not ordered by index: %+v", result.Rows)
	}
	if result.Rows[1].Status != importStatusFailed || result.Rows[1].Message == "" {
		t.Fatalf("invalid row not reported: %+v", result.Rows[1])
	}

	stored, err := repo.ListByClub(t.Context(), memory.ClubIDNorthside)
	if err != nil {
		t.Fatalf("list stored drills: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored drills, got %d", len(stored))
	}
}

func TestDrillImportService_Import_UsesServiceDefaultWorkers(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(nil)
	svc := NewDrillImportService(repo, f.hierarchy, f.ids, 3)

	result, err := svc.Import(t.Context(), memory.ClubIDNorthside, "", "", DrillImportInput{
		Rows: []DrillInput{
			{Name: "Wall Passes", Category: "Technical"},
			{Name: "Cone Slalom", Category: "Conditioning"},
			{Name: "Rondo 4v1", Category: "Possession"},
			{Name: "Shooting Arc", Category: "Finishing"},
		},
	})
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.WorkerCount != 3 {
		t.Fatalf("expected configured default of 3 workers, got %d", result.WorkerCount)
	}
}

func TestDrillImportService_Import_DryRunWritesNothing(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(nil)
	svc := NewDrillImportService(repo, f.hierarchy, f.ids, 0)

	result, err := svc.Import(t.Context(), memory.ClubIDNorthside, "", "", DrillImportInput{
		Rows:   []DrillInput{{Name: "Wall Passes", Category: "Technical"}},
		DryRun: true,
	})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if result.SuccessCount != 1 || !result.DryRun {
		t.Fatalf("unexpected result: %+v", result)
	}

	stored, err := repo.ListByClub(t.Context(), memory.ClubIDNorthside)
	if err != nil {
		t.Fatalf("list stored drills: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("dry run must not persist, found %d drills", len(stored))
	}
}

func TestDrillImportService_Import_ArchivedAgeGroupBlocksBatch(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(nil)
	svc := NewDrillImportService(repo, f.hierarchy, f.ids, 0)

	archiveSeedAgeGroup(t, t.Context(), f, memory.AgeGroupIDNorthsideU12)

	_, err := svc.Import(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, DrillImportInput{
		Rows: []DrillInput{{Name: "Wall Passes", Category: "Technical"}},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
