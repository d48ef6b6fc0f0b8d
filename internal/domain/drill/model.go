package drill

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/scope"
)

// Drill is a reusable training exercise authored at a club, age group or
// team scope and inherited downward from there.
type Drill struct {
	ID              string
	Name            string
	Category        string
	Description     string
	Scope           scope.Reference
	Attributes      []string
	DurationMinutes int
	IsArchived      bool
	UpdatedAt       time.Time
}

func (d Drill) Archived() bool { return d.IsArchived }

func (d Drill) ItemID() string                  { return d.ID }
func (d Drill) ItemName() string                { return d.Name }
func (d Drill) ItemCategory() string            { return d.Category }
func (d Drill) DefinitionScope() scope.Reference { return d.Scope }
func (d Drill) AttributeCodes() []string        { return d.Attributes }

// SearchableText flattens name, description and attribute labels for the
// resolver's substring search.
func (d Drill) SearchableText() string {
	parts := make([]string, 0, 2+len(d.Attributes))
	parts = append(parts, d.Name, d.Description)
	parts = append(parts, d.Attributes...)
	return strings.Join(parts, " ")
}

func (d Drill) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("drill id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("drill name is required")
	}
	if d.Scope.IsZero() {
		return fmt.Errorf("drill scope is required")
	}
	if d.DurationMinutes < 0 {
		return fmt.Errorf("drill duration cannot be negative")
	}

	return nil
}
