package tactic

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/scope"
)

// Override is a sparse, field-level customization of one formation slot.
// A nil field means "keep the base formation's value"; overridden state is
// carried by pointer presence, never by sentinel values.
type Override struct {
	Role *string
	X    *float64
	Y    *float64
}

// Tactic is a scoped customization of a base formation, expressed as sparse
// per-slot overrides keyed by slot index.
type Tactic struct {
	ID                string
	Name              string
	Category          string
	Description       string
	Scope             scope.Reference
	SquadSize         int
	ParentFormationID string
	Overrides         map[int]Override
	Attributes        []string
	IsArchived        bool
	UpdatedAt         time.Time
}

func (t Tactic) Archived() bool { return t.IsArchived }

func (t Tactic) ItemID() string                   { return t.ID }
func (t Tactic) ItemName() string                 { return t.Name }
func (t Tactic) ItemCategory() string             { return t.Category }
func (t Tactic) DefinitionScope() scope.Reference { return t.Scope }
func (t Tactic) AttributeCodes() []string         { return t.Attributes }

func (t Tactic) SearchableText() string {
	parts := make([]string, 0, 2+len(t.Attributes))
	parts = append(parts, t.Name, t.Description)
	parts = append(parts, t.Attributes...)
	return strings.Join(parts, " ")
}

func (t Tactic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tactic id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tactic name is required")
	}
	if t.Scope.IsZero() {
		return fmt.Errorf("tactic scope is required")
	}
	if t.SquadSize <= 0 {
		return fmt.Errorf("tactic squad size must be positive")
	}
	if t.ParentFormationID == "" {
		return fmt.Errorf("tactic parent formation id is required")
	}
	for idx, override := range t.Overrides {
		if idx < 0 {
			return fmt.Errorf("override slot index %d is negative", idx)
		}
		if override.Role == nil && override.X == nil && override.Y == nil {
			return fmt.Errorf("override for slot %d sets no fields", idx)
		}
		if override.X != nil && (*override.X < 0 || *override.X > 1) {
			return fmt.Errorf("override for slot %d has x outside [0,1]", idx)
		}
		if override.Y != nil && (*override.Y < 0 || *override.Y > 1) {
			return fmt.Errorf("override for slot %d has y outside [0,1]", idx)
		}
	}

	return nil
}
