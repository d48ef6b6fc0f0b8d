package scope

// Action is the mutation intent the archive guard decides on.
type Action int

const (
	// ActionCreateChild creates a new entity directly under the target scope
	// (a team under an age group, or a match/session/drill under a team).
	ActionCreateChild Action = iota + 1
	// ActionUpdate modifies fields of the entity at the target scope.
	ActionUpdate
	// ActionArchive flips the entity's archived flag on.
	ActionArchive
	// ActionUnarchive flips the entity's archived flag off.
	ActionUnarchive
)

// Archivable exposes the soft-delete flag carried by every hierarchy entity.
type Archivable interface {
	Archived() bool
}

// Ancestors holds the archived state of the scopes enclosing the target.
// AgeGroup is nil for club-level targets.
type Ancestors struct {
	Club     Archivable
	AgeGroup Archivable
}

// Decision is the guard's verdict. The guard never mutates state and never
// errors; callers translate a denial into their own rejection response.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// CanMutate decides whether a mutation may proceed given the target scope,
// the archived state of its ancestors, and the archived state of the target
// entity itself.
//
// Creation under an age group is blocked while that age group is archived;
// an archived club does not by itself block age-group- or team-level writes.
// Updating an archived entity is blocked, except unarchiving, which is always
// permitted.
func CanMutate(action Action, target Reference, ancestors Ancestors, targetArchived bool) Decision {
	switch action {
	case ActionUnarchive:
		return allow()
	case ActionCreateChild:
		if targetArchived {
			return deny("target scope is archived")
		}
		if enclosed := enclosingAgeGroup(target, ancestors); enclosed != nil && enclosed.Archived() {
			return deny("enclosing age group is archived")
		}
		return allow()
	case ActionUpdate, ActionArchive:
		if targetArchived && action == ActionUpdate {
			return deny("entity is archived")
		}
		if enclosed := enclosingAgeGroup(target, ancestors); enclosed != nil && enclosed.Archived() {
			return deny("enclosing age group is archived")
		}
		return allow()
	default:
		return deny("unknown action")
	}
}

// enclosingAgeGroup returns the age group whose archived flag gates writes at
// the target, or nil when none applies. For a team-level target that is the
// owning age group; for an age-group target creating children, the age group
// itself is the target and is checked via targetArchived instead.
func enclosingAgeGroup(target Reference, ancestors Ancestors) Archivable {
	if target.Level() == LevelTeam {
		return ancestors.AgeGroup
	}
	return nil
}

// ArchivedFlag adapts a plain bool to the Archivable contract.
type ArchivedFlag bool

func (f ArchivedFlag) Archived() bool { return bool(f) }
