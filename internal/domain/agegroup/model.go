package agegroup

import (
	"fmt"
	"time"
)

// AgeGroup is one age bracket inside a club, e.g. U12.
type AgeGroup struct {
	ID         string
	ClubID     string
	Name       string
	BirthYear  int
	IsArchived bool
	UpdatedAt  time.Time
}

func (g AgeGroup) Archived() bool { return g.IsArchived }

func (g AgeGroup) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("age group id is required")
	}
	if g.ClubID == "" {
		return fmt.Errorf("age group club id is required")
	}
	if g.Name == "" {
		return fmt.Errorf("age group name is required")
	}

	return nil
}
