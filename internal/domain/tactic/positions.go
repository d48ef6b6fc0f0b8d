package tactic

import "github.com/pitchside/clubadmin/internal/domain/formation"

// ResolvedPosition is the final role and placement for one formation slot
// after applying any tactic override. It is ephemeral: recomputed per request,
// never persisted.
type ResolvedPosition struct {
	SlotIndex int
	Role      string
	X         float64
	Y         float64
}

// ResolvePositions merges a tactic's sparse overrides onto the base formation
// and returns one resolved position per slot, in slot order.
//
// The merge is field-level: an override may change only the role while the
// coordinates stay at the base position. A nil tactic yields the base
// formation unchanged. Overrides whose slot index matches no formation slot
// are inert. The function never mutates its inputs and the returned slice
// shares no memory with them, so repeated calls with equal inputs produce
// deep-equal results.
//
// Callers are responsible for checking that the tactic's squad size and
// parent formation id match the supplied formation; the merge itself stays
// total and does not attempt to repair mismatched pairs.
func ResolvePositions(f formation.Formation, t *Tactic) []ResolvedPosition {
	out := make([]ResolvedPosition, 0, len(f.Slots))
	for _, slot := range f.Slots {
		resolved := ResolvedPosition{
			SlotIndex: slot.SlotIndex,
			Role:      slot.Role,
			X:         slot.X,
			Y:         slot.Y,
		}
		if t != nil {
			if override, ok := t.Overrides[slot.SlotIndex]; ok {
				if override.Role != nil {
					resolved.Role = *override.Role
				}
				if override.X != nil {
					resolved.X = *override.X
				}
				if override.Y != nil {
					resolved.Y = *override.Y
				}
			}
		}
		out = append(out, resolved)
	}

	return out
}
