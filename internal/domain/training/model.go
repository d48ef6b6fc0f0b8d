package training

import (
	"fmt"
	"time"
)

// Block is one ordered segment of a session, referencing a drill.
type Block struct {
	DrillID         string
	DurationMinutes int
	Note            string
}

// Session is a scheduled training session for one team.
type Session struct {
	ID         string
	TeamID     string
	StartsAt   time.Time
	Blocks     []Block
	TemplateID string
	IsArchived bool
	UpdatedAt  time.Time
}

func (s Session) Archived() bool { return s.IsArchived }

// TotalMinutes sums the block durations.
func (s Session) TotalMinutes() int {
	total := 0
	for _, block := range s.Blocks {
		total += block.DurationMinutes
	}
	return total
}

func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if s.TeamID == "" {
		return fmt.Errorf("session team id is required")
	}
	if s.StartsAt.IsZero() {
		return fmt.Errorf("session start time is required")
	}
	for i, block := range s.Blocks {
		if block.DrillID == "" {
			return fmt.Errorf("session block %d is missing a drill id", i)
		}
		if block.DurationMinutes <= 0 {
			return fmt.Errorf("session block %d duration must be positive", i)
		}
	}

	return nil
}
