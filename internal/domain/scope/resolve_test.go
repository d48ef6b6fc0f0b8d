package scope

import "testing"

type fakeItem struct {
	id       string
	name     string
	category string
	definedAt Reference
	text     string
	codes    []string
}

func (f fakeItem) ItemID() string             { return f.id }
func (f fakeItem) ItemName() string           { return f.name }
func (f fakeItem) ItemCategory() string       { return f.category }
func (f fakeItem) DefinitionScope() Reference { return f.definedAt }
func (f fakeItem) SearchableText() string     { return f.text }
func (f fakeItem) AttributeCodes() []string   { return f.codes }

func ids[T Item](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ItemID())
	}
	return out
}

func sameIDs(got, want []string) bool {
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

func hierarchyFixture() []fakeItem {
	return []fakeItem{
		{id: "A", name: "Club passing circuit", definedAt: Club("club-1")},
		{id: "B", name: "U12 pressing drill", definedAt: AgeGroup("club-1", "u12")},
		{id: "D", name: "Red team shape work", definedAt: Team("club-1", "u12", "u12-red")},
	}
}

func TestResolve_VisibilityPerLevel(t *testing.T) {
	items := hierarchyFixture()

	atClub := Resolve(items, Club("club-1"), Filters{})
	if !sameIDs(ids(atClub.ScopeItems), []string{"A"}) || len(atClub.InheritedItems) != 0 {
		t.Fatalf("club query: scope=%v inherited=%v", ids(atClub.ScopeItems), ids(atClub.InheritedItems))
	}

	atAgeGroup := Resolve(items, AgeGroup("club-1", "u12"), Filters{})
	if !sameIDs(ids(atAgeGroup.ScopeItems), []string{"B"}) {
		t.Fatalf("age group query scope items: %v", ids(atAgeGroup.ScopeItems))
	}
	if !sameIDs(ids(atAgeGroup.InheritedItems), []string{"A"}) {
		t.Fatalf("age group query inherited items: %v", ids(atAgeGroup.InheritedItems))
	}

	atTeam := Resolve(items, Team("club-1", "u12", "u12-red"), Filters{})
	if !sameIDs(ids(atTeam.ScopeItems), []string{"D"}) {
		t.Fatalf("team query scope items: %v", ids(atTeam.ScopeItems))
	}
	// Closer ancestors come first: the age group item before the club item.
	if !sameIDs(ids(atTeam.InheritedItems), []string{"B", "A"}) {
		t.Fatalf("team query inherited items: %v", ids(atTeam.InheritedItems))
	}
}

func TestResolve_NoSiblingLeakage(t *testing.T) {
	items := hierarchyFixture()

	sibling := Resolve(items, AgeGroup("club-1", "u14"), Filters{})
	if len(sibling.ScopeItems) != 0 {
		t.Fatalf("sibling age group saw scope items: %v", ids(sibling.ScopeItems))
	}
	if !sameIDs(ids(sibling.InheritedItems), []string{"A"}) {
		t.Fatalf("sibling age group inherited items: %v", ids(sibling.InheritedItems))
	}
}

func TestResolve_CategoryFilterCaseInsensitive(t *testing.T) {
	items := []fakeItem{
		{id: "1", name: "a", category: "Technical", definedAt: Club("club-1")},
		{id: "2", name: "b", category: "tactical", definedAt: Club("club-1")},
		{id: "3", name: "c", category: "TECHNICAL", definedAt: Club("club-1")},
	}

	got := Resolve(items, Club("club-1"), Filters{Category: "technical"})
	if !sameIDs(ids(got.ScopeItems), []string{"1", "3"}) {
		t.Fatalf("category filter kept: %v", ids(got.ScopeItems))
	}
}

func TestResolve_SearchTermSubstring(t *testing.T) {
	items := []fakeItem{
		{id: "1", name: "Rondo", text: "Rondo small-sided possession game", definedAt: Club("club-1")},
		{id: "2", name: "Shooting", text: "Finishing from crosses", definedAt: Club("club-1")},
	}

	got := Resolve(items, Club("club-1"), Filters{SearchTerm: "POSSESSION"})
	if !sameIDs(ids(got.ScopeItems), []string{"1"}) {
		t.Fatalf("search filter kept: %v", ids(got.ScopeItems))
	}
}

func TestResolve_AttributeCodesRequireAll(t *testing.T) {
	items := []fakeItem{
		{id: "both", name: "a", codes: []string{"passing", "vision", "stamina"}, definedAt: Club("club-1")},
		{id: "one", name: "b", codes: []string{"passing"}, definedAt: Club("club-1")},
		{id: "none", name: "c", codes: []string{"shooting"}, definedAt: Club("club-1")},
	}

	got := Resolve(items, Club("club-1"), Filters{AttributeCodes: []string{" Passing ", "VISION"}})
	if !sameIDs(ids(got.ScopeItems), []string{"both"}) {
		t.Fatalf("attribute filter kept: %v", ids(got.ScopeItems))
	}
}

func TestResolve_EmptyFiltersMeanNoConstraint(t *testing.T) {
	items := hierarchyFixture()

	got := Resolve(items, Team("club-1", "u12", "u12-red"), Filters{
		Category:       "",
		SearchTerm:     "  ",
		AttributeCodes: []string{"", "  "},
	})
	if len(got.ScopeItems)+len(got.InheritedItems) != 3 {
		t.Fatalf("blank filter clauses excluded items: scope=%v inherited=%v",
			ids(got.ScopeItems), ids(got.InheritedItems))
	}
}

func TestResolve_OrderingByNameCaseInsensitive(t *testing.T) {
	items := []fakeItem{
		{id: "3", name: "zone defending", definedAt: Club("club-1")},
		{id: "1", name: "Agility ladder", definedAt: Club("club-1")},
		{id: "2", name: "ball mastery", definedAt: Club("club-1")},
	}

	got := Resolve(items, Club("club-1"), Filters{})
	if !sameIDs(ids(got.ScopeItems), []string{"1", "2", "3"}) {
		t.Fatalf("unexpected order: %v", ids(got.ScopeItems))
	}
}

func TestResolve_EmptyResultIsValid(t *testing.T) {
	got := Resolve([]fakeItem{}, Team("club-9", "u10", "t-1"), Filters{})
	if got.ScopeItems == nil || got.InheritedItems == nil {
		t.Fatal("result slices must be non-nil even when empty")
	}
	if len(got.ScopeItems) != 0 || len(got.InheritedItems) != 0 {
		t.Fatal("expected empty result")
	}
}
