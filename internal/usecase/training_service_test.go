package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func newTrainingFixture() (fixtureRepos, *TrainingService) {
	f := newFixtureRepos()
	svc := NewTrainingService(
		memory.NewTrainingRepository(nil),
		memory.NewDrillRepository(memory.SeedDrills()),
		memory.NewDrillTemplateRepository(memory.SeedDrillTemplates()),
		f.hierarchy,
		f.ids,
	)
	return f, svc
}

func TestTrainingService_Create_FromTemplate(t *testing.T) {
	_, svc := newTrainingFixture()

	sess, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, TrainingSessionInput{
		StartsAt:   time.Date(2026, 9, 3, 17, 30, 0, 0, time.UTC),
		TemplateID: "tpl-club-standard",
	})
	if err != nil {
		t.Fatalf("create from template failed: %v", err)
	}

	if len(sess.Blocks) != 3 {
		t.Fatalf("expected 3 blocks seeded from template, got %d", len(sess.Blocks))
	}
	if sess.TotalMinutes() != 60 {
		t.Fatalf("expected 60 total minutes, got %d", sess.TotalMinutes())
	}
	if sess.TemplateID != "tpl-club-standard" {
		t.Fatalf("template id not recorded: %s", sess.TemplateID)
	}
}

func TestTrainingService_Create_ExplicitBlocks(t *testing.T) {
	_, svc := newTrainingFixture()

	sess, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, TrainingSessionInput{
		StartsAt: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		Blocks: []SessionBlockInput{
			{DrillID: "drill-club-warmup", DurationMinutes: 10},
			{DrillID: "drill-red-finishing", DurationMinutes: 25, Note: "both feet"},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sess.TotalMinutes() != 35 {
		t.Fatalf("unexpected total minutes: %d", sess.TotalMinutes())
	}
}

func TestTrainingService_Create_DrillNotVisibleRejected(t *testing.T) {
	_, svc := newTrainingFixture()

	// drill-red-finishing is defined at U12 Red; the Blue team cannot use it.
	_, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Blue, TrainingSessionInput{
		StartsAt: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		Blocks:   []SessionBlockInput{{DrillID: "drill-red-finishing", DurationMinutes: 20}},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTrainingService_Create_ArchivedAgeGroupBlocks(t *testing.T) {
	f, svc := newTrainingFixture()

	archiveSeedAgeGroup(t, t.Context(), f, memory.AgeGroupIDNorthsideU12)

	_, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, TrainingSessionInput{
		StartsAt: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		Blocks:   []SessionBlockInput{{DrillID: "drill-club-warmup", DurationMinutes: 10}},
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
