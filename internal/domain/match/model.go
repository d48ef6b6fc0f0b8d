package match

import (
	"fmt"
	"time"
)

// LineupEntry assigns a player to one formation slot for a match.
type LineupEntry struct {
	SlotIndex int
	PlayerID  string
}

// Match is a scheduled fixture for one team.
type Match struct {
	ID         string
	TeamID     string
	Opponent   string
	KickoffAt  time.Time
	Venue      string
	Home       bool
	TacticID   string
	Lineup     []LineupEntry
	IsArchived bool
	UpdatedAt  time.Time
}

func (m Match) Archived() bool { return m.IsArchived }

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if m.TeamID == "" {
		return fmt.Errorf("match team id is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match kickoff time is required")
	}
	seen := make(map[int]struct{}, len(m.Lineup))
	for _, entry := range m.Lineup {
		if entry.PlayerID == "" {
			return fmt.Errorf("lineup entry for slot %d is missing a player id", entry.SlotIndex)
		}
		if _, dup := seen[entry.SlotIndex]; dup {
			return fmt.Errorf("duplicate lineup slot %d", entry.SlotIndex)
		}
		seen[entry.SlotIndex] = struct{}{}
	}

	return nil
}
