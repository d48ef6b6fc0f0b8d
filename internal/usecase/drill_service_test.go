package usecase

import (
	"errors"
	"testing"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func drillNames(items []drill.Drill) []string {
	names := make([]string, 0, len(items))
	for _, d := range items {
		names = append(names, d.Name)
	}
	return names
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestDrillService_ListScoped_TeamSeesInheritedGrouping(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(memory.SeedDrills())
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	result, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{})
	if err != nil {
		t.Fatalf("list scoped failed: %v", err)
	}

	if got := drillNames(result.ScopeItems); !equalNames(got, []string{"Finishing Circuit"}) {
		t.Fatalf("unexpected scope items: %v", got)
	}
	// Age-group drills come before club drills; within a group, by name.
	want := []string{"Pressing Triggers", "Dynamic Warmup", "Rondo 5v2"}
	if got := drillNames(result.InheritedItems); !equalNames(got, want) {
		t.Fatalf("unexpected inherited items: %v", got)
	}
}

func TestDrillService_ListScoped_ClubSeesNothingFromBelow(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(memory.SeedDrills())
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	result, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, "", "", ScopedListFilters{})
	if err != nil {
		t.Fatalf("list scoped failed: %v", err)
	}

	if got := drillNames(result.ScopeItems); !equalNames(got, []string{"Dynamic Warmup", "Rondo 5v2"}) {
		t.Fatalf("unexpected scope items: %v", got)
	}
	if len(result.InheritedItems) != 0 {
		t.Fatalf("club query must not inherit from descendants: %v", drillNames(result.InheritedItems))
	}
}

func TestDrillService_ListScoped_Filters(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(memory.SeedDrills())
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	byCategory, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{
		Category: "technical",
	})
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if got := drillNames(byCategory.ScopeItems); !equalNames(got, []string{"Finishing Circuit"}) {
		t.Fatalf("unexpected category scope items: %v", got)
	}
	if got := drillNames(byCategory.InheritedItems); !equalNames(got, []string{"Rondo 5v2"}) {
		t.Fatalf("unexpected category inherited items: %v", got)
	}

	bySearch, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{
		SearchTerm: "press",
	})
	if err != nil {
		t.Fatalf("search filter failed: %v", err)
	}
	if got := drillNames(bySearch.InheritedItems); !equalNames(got, []string{"Pressing Triggers"}) {
		t.Fatalf("unexpected search inherited items: %v", got)
	}

	byAttributes, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{
		AttributeCodes: []string{" passing ", "first_touch"},
	})
	if err != nil {
		t.Fatalf("attribute filter failed: %v", err)
	}
	if got := drillNames(byAttributes.InheritedItems); !equalNames(got, []string{"Rondo 5v2"}) {
		t.Fatalf("unexpected attribute inherited items: %v", got)
	}
}

func TestDrillService_Create_VisibleOnlyDownward(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(nil)
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	created, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, "", DrillInput{
		Name:     "Shadow Play",
		Category: "Tactical",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	atTeam, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, ScopedListFilters{})
	if err != nil {
		t.Fatalf("team list failed: %v", err)
	}
	if got := drillNames(atTeam.InheritedItems); !equalNames(got, []string{"Shadow Play"}) {
		t.Fatalf("team under the authoring age group must inherit the drill: %v", got)
	}

	atSibling, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU10, "", ScopedListFilters{})
	if err != nil {
		t.Fatalf("sibling list failed: %v", err)
	}
	if len(atSibling.ScopeItems)+len(atSibling.InheritedItems) != 0 {
		t.Fatal("sibling age group must not see the drill")
	}

	atClub, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, "", "", ScopedListFilters{})
	if err != nil {
		t.Fatalf("club list failed: %v", err)
	}
	if len(atClub.ScopeItems)+len(atClub.InheritedItems) != 0 {
		t.Fatal("club query must not see age-group drills")
	}

	if _, err := svc.Get(t.Context(), memory.ClubIDNorthside, "", "", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for upward get, got %v", err)
	}
}

func TestDrillService_SetArchived_HidesFromListing(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(memory.SeedDrills())
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	if _, err := svc.SetArchived(t.Context(), memory.ClubIDNorthside, "", "", "drill-club-rondo", true); err != nil {
		t.Fatalf("archive failed: %v", err)
	}

	result, err := svc.ListScoped(t.Context(), memory.ClubIDNorthside, "", "", ScopedListFilters{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if got := drillNames(result.ScopeItems); !equalNames(got, []string{"Dynamic Warmup"}) {
		t.Fatalf("archived drill still listed: %v", got)
	}

	if _, err := svc.SetArchived(t.Context(), memory.ClubIDNorthside, "", "", "drill-club-rondo", false); err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}
}

func TestDrillService_Update_InheritedItemRejected(t *testing.T) {
	f := newFixtureRepos()
	repo := memory.NewDrillRepository(memory.SeedDrills())
	svc := NewDrillService(repo, f.hierarchy, f.ids)

	_, err := svc.Update(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, "drill-club-rondo", DrillInput{
		Name: "Hijacked",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden when editing an inherited drill, got %v", err)
	}
}
