package coach

import (
	"fmt"
	"time"
)

// Coach is a staff member assigned to a team.
type Coach struct {
	ID         string
	TeamID     string
	Name       string
	Role       string
	Email      string
	IsArchived bool
	UpdatedAt  time.Time
}

func (c Coach) Archived() bool { return c.IsArchived }

func (c Coach) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("coach id is required")
	}
	if c.TeamID == "" {
		return fmt.Errorf("coach team id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("coach name is required")
	}

	return nil
}
