package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func newTacticFixture() (fixtureRepos, *TacticService) {
	f := newFixtureRepos()
	tacticRepo := memory.NewTacticRepository(memory.SeedTactics())
	formationRepo := memory.NewFormationRepository(memory.SeedFormations())
	return f, NewTacticService(tacticRepo, formationRepo, f.hierarchy, f.ids)
}

func TestTacticService_ResolvePositions_AppliesOverrides(t *testing.T) {
	_, svc := newTacticFixture()

	positions, err := svc.ResolvePositions(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "", "tac-u12-false-nine")
	require.NoError(t, err)
	require.Len(t, positions, 11)

	// Slot 9 carries the false-nine override: new role, dropped y, same x.
	assert.Equal(t, "CF", positions[9].Role)
	assert.InDelta(t, 0.70, positions[9].Y, 1e-9)
	assert.InDelta(t, 0.50, positions[9].X, 1e-9)

	// Untouched slots keep the base formation values.
	assert.Equal(t, "GK", positions[0].Role)
	assert.Equal(t, "RW", positions[8].Role)
}

func TestTacticService_ResolvePositions_SquadSizeMismatch(t *testing.T) {
	f := newFixtureRepos()
	seeded := memory.SeedTactics()
	seeded[0].SquadSize = 7 // stored inconsistently with its 11-a-side parent
	tacticRepo := memory.NewTacticRepository(seeded)
	formationRepo := memory.NewFormationRepository(memory.SeedFormations())
	svc := NewTacticService(tacticRepo, formationRepo, f.hierarchy, f.ids)

	_, err := svc.ResolvePositions(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "", "tac-u12-false-nine")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTacticService_Create_InheritsFormationSquadSize(t *testing.T) {
	_, svc := newTacticFixture()

	created, err := svc.Create(t.Context(), memory.ClubIDNorthside, "", "", TacticInput{
		Name:              "Compact Sevens",
		ParentFormationID: memory.FormationID231,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.SquadSize)
	assert.Equal(t, memory.FormationID231, created.ParentFormationID)
}

func TestTacticService_Create_UnknownFormationRejected(t *testing.T) {
	_, svc := newTacticFixture()

	_, err := svc.Create(t.Context(), memory.ClubIDNorthside, "", "", TacticInput{
		Name:              "Ghost Formation",
		ParentFormationID: "fmt-nope",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTacticService_ListScoped_NotVisibleUpward(t *testing.T) {
	_, svc := newTacticFixture()

	atClub, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, "", "", ScopedListFilters{})
	require.NoError(t, err)
	assert.Empty(t, atClub.ScopeItems)
	assert.Empty(t, atClub.InheritedItems)

	atTeam, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{})
	require.NoError(t, err)
	require.Len(t, atTeam.InheritedItems, 1)
	assert.Equal(t, "False Nine Press", atTeam.InheritedItems[0].Name)
}

func TestTacticService_StoredOverridesAreIsolated(t *testing.T) {
	_, svc := newTacticFixture()

	first, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "", "tac-u12-false-nine")
	require.NoError(t, err)

	role := "LW"
	first.Overrides[9] = tactic.Override{Role: &role}

	second, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "", "tac-u12-false-nine")
	require.NoError(t, err)
	require.NotNil(t, second.Overrides[9].Role)
	assert.Equal(t, "CF", *second.Overrides[9].Role)
}
