package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/team"
	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

// seqIDGenerator hands out predictable ids so assertions can name them.
type seqIDGenerator struct {
	n atomic.Int64
}

func (g *seqIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("id-%04d", g.n.Add(1)), nil
}

type fixtureRepos struct {
	clubs     *memory.ClubRepository
	ageGroups *memory.AgeGroupRepository
	teams     *memory.TeamRepository
	hierarchy *HierarchyService
	ids       *seqIDGenerator
}

func newFixtureRepos() fixtureRepos {
	clubs := memory.NewClubRepository(memory.SeedClubs())
	ageGroups := memory.NewAgeGroupRepository(memory.SeedAgeGroups())
	teams := memory.NewTeamRepository(memory.SeedTeams())

	return fixtureRepos{
		clubs:     clubs,
		ageGroups: ageGroups,
		teams:     teams,
		hierarchy: NewHierarchyService(clubs, ageGroups, teams),
		ids:       &seqIDGenerator{},
	}
}

func archiveSeedClub(t *testing.T, ctx context.Context, f fixtureRepos) {
	t.Helper()

	c, ok, err := f.clubs.GetByID(ctx, memory.ClubIDNorthside)
	if err != nil || !ok {
		t.Fatalf("load seed club: ok=%v err=%v", ok, err)
	}
	c.IsArchived = true
	if err := f.clubs.Upsert(ctx, c); err != nil {
		t.Fatalf("archive seed club: %v", err)
	}
}

func archiveSeedAgeGroup(t *testing.T, ctx context.Context, f fixtureRepos, ageGroupID string) agegroup.AgeGroup {
	t.Helper()

	g, ok, err := f.ageGroups.GetByID(ctx, ageGroupID)
	if err != nil || !ok {
		t.Fatalf("load seed age group: ok=%v err=%v", ok, err)
	}
	g.IsArchived = true
	if err := f.ageGroups.Upsert(ctx, g); err != nil {
		t.Fatalf("archive seed age group: %v", err)
	}
	return g
}

func archiveSeedTeam(t *testing.T, ctx context.Context, f fixtureRepos, teamID string) team.Team {
	t.Helper()

	tm, ok, err := f.teams.GetByID(ctx, teamID)
	if err != nil || !ok {
		t.Fatalf("load seed team: ok=%v err=%v", ok, err)
	}
	tm.IsArchived = true
	if err := f.teams.Upsert(ctx, tm); err != nil {
		t.Fatalf("archive seed team: %v", err)
	}
	return tm
}
