package team

import (
	"fmt"
	"time"
)

// Team is a squad inside an age group.
type Team struct {
	ID         string
	ClubID     string
	AgeGroupID string
	Name       string
	Short      string
	IsArchived bool
	UpdatedAt  time.Time
}

func (t Team) Archived() bool { return t.IsArchived }

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.ClubID == "" {
		return fmt.Errorf("team club id is required")
	}
	if t.AgeGroupID == "" {
		return fmt.Errorf("team age group id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
