package drilltemplate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pitchside/clubadmin/internal/domain/scope"
)

// Block is one ordered segment of a session template, referencing a drill.
type Block struct {
	DrillID         string
	DurationMinutes int
	Note            string
}

// Template is a reusable session outline authored at a scope and inherited
// downward, composed of ordered drill blocks.
type Template struct {
	ID          string
	Name        string
	Category    string
	Description string
	Scope       scope.Reference
	Attributes  []string
	Blocks      []Block
	IsArchived  bool
	UpdatedAt   time.Time
}

func (t Template) Archived() bool { return t.IsArchived }

func (t Template) ItemID() string                   { return t.ID }
func (t Template) ItemName() string                 { return t.Name }
func (t Template) ItemCategory() string             { return t.Category }
func (t Template) DefinitionScope() scope.Reference { return t.Scope }
func (t Template) AttributeCodes() []string         { return t.Attributes }

func (t Template) SearchableText() string {
	parts := make([]string, 0, 2+len(t.Attributes))
	parts = append(parts, t.Name, t.Description)
	parts = append(parts, t.Attributes...)
	return strings.Join(parts, " ")
}

// TotalMinutes sums the block durations.
func (t Template) TotalMinutes() int {
	total := 0
	for _, block := range t.Blocks {
		total += block.DurationMinutes
	}
	return total
}

func (t Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("template name is required")
	}
	if t.Scope.IsZero() {
		return fmt.Errorf("template scope is required")
	}
	for i, block := range t.Blocks {
		if block.DrillID == "" {
			return fmt.Errorf("template block %d is missing a drill id", i)
		}
		if block.DurationMinutes <= 0 {
			return fmt.Errorf("template block %d duration must be positive", i)
		}
	}

	return nil
}
