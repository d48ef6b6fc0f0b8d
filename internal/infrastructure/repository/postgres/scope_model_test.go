package postgres

import (
	"testing"

	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
)

func TestScopeToColumns(t *testing.T) {
	t.Run("club scope leaves descendants null", func(t *testing.T) {
		clubID, ageGroupID, teamID := scopeToColumns(scope.Club("club-1"))
		if clubID != "club-1" {
			t.Fatalf("unexpected club id: %s", clubID)
		}
		if ageGroupID != nil || teamID != nil {
			t.Fatalf("expected null age group and team columns")
		}
	})

	t.Run("team scope fills all three columns", func(t *testing.T) {
		clubID, ageGroupID, teamID := scopeToColumns(scope.Team("club-1", "ag-1", "team-1"))
		if clubID != "club-1" {
			t.Fatalf("unexpected club id: %s", clubID)
		}
		if ageGroupID == nil || *ageGroupID != "ag-1" {
			t.Fatalf("unexpected age group column: %v", ageGroupID)
		}
		if teamID == nil || *teamID != "team-1" {
			t.Fatalf("unexpected team column: %v", teamID)
		}
	})
}

func TestScopeFromColumns(t *testing.T) {
	ageGroupID := "ag-1"
	teamID := "team-1"

	t.Run("nulls decode to club scope", func(t *testing.T) {
		ref := scopeFromColumns("club-1", nil, nil)
		if !ref.Equal(scope.Club("club-1")) {
			t.Fatalf("unexpected scope: %s", ref)
		}
	})

	t.Run("age group column decodes to age group scope", func(t *testing.T) {
		ref := scopeFromColumns("club-1", &ageGroupID, nil)
		if !ref.Equal(scope.AgeGroup("club-1", "ag-1")) {
			t.Fatalf("unexpected scope: %s", ref)
		}
	})

	t.Run("team column decodes to team scope", func(t *testing.T) {
		ref := scopeFromColumns("club-1", &ageGroupID, &teamID)
		if !ref.Equal(scope.Team("club-1", "ag-1", "team-1")) {
			t.Fatalf("unexpected scope: %s", ref)
		}
	})
}

func TestMarshalOverridesRoundTrip(t *testing.T) {
	t.Run("empty map stores empty object", func(t *testing.T) {
		raw, err := marshalOverrides(nil)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(raw) != "{}" {
			t.Fatalf("unexpected payload: %s", raw)
		}
		decoded, err := unmarshalOverrides(raw)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(decoded) != 0 {
			t.Fatalf("expected no overrides, got %d", len(decoded))
		}
	})

	t.Run("sparse overrides keep slot keys", func(t *testing.T) {
		role := "CAM"
		x := 0.5
		raw, err := marshalOverrides(map[int]tactic.Override{
			7: {Role: &role, X: &x},
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		decoded, err := unmarshalOverrides(raw)
		if err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		o, ok := decoded[7]
		if !ok {
			t.Fatalf("expected override for slot 7")
		}
		if o.Role == nil || *o.Role != "CAM" {
			t.Fatalf("unexpected role: %v", o.Role)
		}
		if o.X == nil || *o.X != 0.5 {
			t.Fatalf("unexpected x: %v", o.X)
		}
		if o.Y != nil {
			t.Fatalf("expected y untouched")
		}
	})

	t.Run("non numeric slot key is rejected", func(t *testing.T) {
		if _, err := unmarshalOverrides([]byte(`{"gk":{"role":"GK"}}`)); err == nil {
			t.Fatalf("expected error for non numeric slot key")
		}
	})
}
