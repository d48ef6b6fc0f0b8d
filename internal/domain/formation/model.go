package formation

import "fmt"

// Slot is one position in a formation. SlotIndex is the stable 0-based place
// in the ordered slot list; X and Y are normalized pitch coordinates in [0,1].
type Slot struct {
	SlotIndex int
	Role      string
	X         float64
	Y         float64
}

// Formation is immutable reference data shared across tactics: an ordered,
// fixed set of position slots for a given squad size.
type Formation struct {
	ID        string
	Name      string
	SquadSize int
	Slots     []Slot
}

func (f Formation) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("formation id is required")
	}
	if f.SquadSize <= 0 {
		return fmt.Errorf("formation squad size must be positive")
	}
	if len(f.Slots) != f.SquadSize {
		return fmt.Errorf("formation must have exactly %d slots, has %d", f.SquadSize, len(f.Slots))
	}
	for i, slot := range f.Slots {
		if slot.SlotIndex != i {
			return fmt.Errorf("slot %d carries index %d", i, slot.SlotIndex)
		}
		if slot.Role == "" {
			return fmt.Errorf("slot %d is missing a role", i)
		}
		if slot.X < 0 || slot.X > 1 || slot.Y < 0 || slot.Y > 1 {
			return fmt.Errorf("slot %d coordinates must be within [0,1]", i)
		}
	}

	return nil
}
