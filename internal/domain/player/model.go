package player

import (
	"fmt"
	"time"
)

// Player is a registered squad member of a team.
type Player struct {
	ID            string
	TeamID        string
	Name          string
	BirthDate     time.Time
	ShirtNumber   int
	PreferredFoot string
	IsArchived    bool
	UpdatedAt     time.Time
}

func (p Player) Archived() bool { return p.IsArchived }

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
