package club

import (
	"fmt"
	"time"
)

// Club is the root of the organizational hierarchy.
type Club struct {
	ID         string
	Name       string
	FoundedAt  time.Time
	IsArchived bool
	UpdatedAt  time.Time
}

func (c Club) Archived() bool { return c.IsArchived }

func (c Club) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("club id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}

	return nil
}
