package usecase

import (
	"errors"
	"testing"

	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func TestTeamOverviewService_Get(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamOverviewService(
		f.hierarchy,
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewCoachRepository(memory.SeedCoaches()),
		memory.NewMatchRepository(nil),
		memory.NewTrainingRepository(nil),
	)

	overview, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red)
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if overview.Team.ID != memory.TeamIDNorthsideU12Red {
		t.Fatalf("unexpected team: %s", overview.Team.ID)
	}
	if len(overview.Players) != 4 {
		t.Fatalf("expected 4 players, got %d", len(overview.Players))
	}
	if len(overview.Coaches) != 1 {
		t.Fatalf("expected 1 coach, got %d", len(overview.Coaches))
	}
	if overview.Players[0].ShirtNumber > overview.Players[1].ShirtNumber {
		t.Fatal("players not ordered by shirt number")
	}
}

func TestTeamOverviewService_Get_UnknownTeam(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamOverviewService(
		f.hierarchy,
		memory.NewPlayerRepository(nil),
		memory.NewCoachRepository(nil),
		memory.NewMatchRepository(nil),
		memory.NewTrainingRepository(nil),
	)

	_, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "team-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
