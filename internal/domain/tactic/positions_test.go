package tactic

import (
	"reflect"
	"testing"

	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/scope"
)

func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }

func eleven() formation.Formation {
	slots := make([]formation.Slot, 0, 11)
	roles := []string{"GK", "RB", "CB", "CB", "LB", "CM", "CM", "CM", "RW", "ST", "LW"}
	for i, role := range roles {
		slots = append(slots, formation.Slot{
			SlotIndex: i,
			Role:      role,
			X:         float64(i) / 10.0,
			Y:         0.5,
		})
	}
	return formation.Formation{ID: "form-433", Name: "4-3-3", SquadSize: 11, Slots: slots}
}

func TestResolvePositions_NilTacticReturnsBase(t *testing.T) {
	base := eleven()

	got := ResolvePositions(base, nil)
	if len(got) != len(base.Slots) {
		t.Fatalf("expected %d positions, got %d", len(base.Slots), len(got))
	}
	for i, pos := range got {
		slot := base.Slots[i]
		if pos.SlotIndex != slot.SlotIndex || pos.Role != slot.Role || pos.X != slot.X || pos.Y != slot.Y {
			t.Fatalf("slot %d differs from base: %+v vs %+v", i, pos, slot)
		}
	}
}

func TestResolvePositions_FieldLevelMerge(t *testing.T) {
	base := eleven()
	tac := &Tactic{
		ID:                "tac-1",
		Name:              "False nine press",
		Scope:             scope.Team("club-1", "u12", "u12-red"),
		SquadSize:         11,
		ParentFormationID: base.ID,
		Overrides: map[int]Override{
			9: {Role: strPtr("False Nine")},
		},
	}

	got := ResolvePositions(base, tac)
	if got[9].Role != "False Nine" {
		t.Fatalf("slot 9 role not overridden: %q", got[9].Role)
	}
	if got[9].X != base.Slots[9].X || got[9].Y != base.Slots[9].Y {
		t.Fatal("slot 9 coordinates must stay at the base position")
	}
	for i := range got {
		if i == 9 {
			continue
		}
		slot := base.Slots[i]
		if got[i] != (ResolvedPosition{SlotIndex: slot.SlotIndex, Role: slot.Role, X: slot.X, Y: slot.Y}) {
			t.Fatalf("slot %d changed without an override: %+v", i, got[i])
		}
	}
}

func TestResolvePositions_CoordinateOnlyOverride(t *testing.T) {
	base := eleven()
	tac := &Tactic{
		Overrides: map[int]Override{
			4: {X: floatPtr(0.05), Y: floatPtr(0.9)},
		},
	}

	got := ResolvePositions(base, tac)
	if got[4].Role != base.Slots[4].Role {
		t.Fatal("role must stay at base when only coordinates are overridden")
	}
	if got[4].X != 0.05 || got[4].Y != 0.9 {
		t.Fatalf("coordinates not applied: %+v", got[4])
	}
}

func TestResolvePositions_UnknownSlotIndexIsInert(t *testing.T) {
	base := eleven()
	tac := &Tactic{
		Overrides: map[int]Override{
			42: {Role: strPtr("Ghost")},
			-1: {Role: strPtr("Ghost")},
		},
	}

	got := ResolvePositions(base, tac)
	if len(got) != len(base.Slots) {
		t.Fatalf("inert overrides must not change output length: %d", len(got))
	}
	for _, pos := range got {
		if pos.Role == "Ghost" {
			t.Fatal("override for a non-existent slot leaked into the result")
		}
	}
}

func TestResolvePositions_IdempotentAndIsolated(t *testing.T) {
	base := eleven()
	tac := &Tactic{
		Overrides: map[int]Override{
			0: {Role: strPtr("Sweeper Keeper"), Y: floatPtr(0.1)},
		},
	}

	first := ResolvePositions(base, tac)
	second := ResolvePositions(base, tac)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated calls with equal inputs must be deep-equal")
	}

	first[0].Role = "mutated"
	first[3].X = -1
	third := ResolvePositions(base, tac)
	if !reflect.DeepEqual(second, third) {
		t.Fatal("mutating a returned slice must not affect later calls")
	}
	if base.Slots[0].Role != "GK" {
		t.Fatal("base formation was mutated")
	}
}
