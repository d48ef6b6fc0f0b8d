package scope

import "fmt"

// Level is the organizational depth at which a resource is defined.
type Level int

const (
	LevelClub Level = iota + 1
	LevelAgeGroup
	LevelTeam
)

func (l Level) String() string {
	switch l {
	case LevelClub:
		return "club"
	case LevelAgeGroup:
		return "age_group"
	case LevelTeam:
		return "team"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Reference names exactly one node in the Club > AgeGroup > Team hierarchy.
// A team reference always carries its owning age group and club ids, and an
// age group reference always carries its club id. References are immutable.
type Reference struct {
	level      Level
	clubID     string
	ageGroupID string
	teamID     string
}

func Club(clubID string) Reference {
	return Reference{level: LevelClub, clubID: clubID}
}

func AgeGroup(clubID, ageGroupID string) Reference {
	return Reference{level: LevelAgeGroup, clubID: clubID, ageGroupID: ageGroupID}
}

func Team(clubID, ageGroupID, teamID string) Reference {
	return Reference{level: LevelTeam, clubID: clubID, ageGroupID: ageGroupID, teamID: teamID}
}

func (r Reference) Level() Level       { return r.level }
func (r Reference) ClubID() string     { return r.clubID }
func (r Reference) AgeGroupID() string { return r.ageGroupID }
func (r Reference) TeamID() string     { return r.teamID }

func (r Reference) IsZero() bool { return r.level == 0 }

func (r Reference) Equal(other Reference) bool { return r == other }

// VisibleAt reports whether a resource defined at r is visible for a query
// scoped at q. Definitions are inherited downward only: a club definition is
// visible to everything under that club, an age group definition to that age
// group and its teams, and a team definition to that team alone. Nothing is
// ever visible upward or to a sibling.
func (r Reference) VisibleAt(q Reference) bool {
	if r.clubID != q.clubID {
		return false
	}

	switch r.level {
	case LevelClub:
		return true
	case LevelAgeGroup:
		return q.level >= LevelAgeGroup && r.ageGroupID == q.ageGroupID
	case LevelTeam:
		return q.level == LevelTeam && r.ageGroupID == q.ageGroupID && r.teamID == q.teamID
	default:
		return false
	}
}

func (r Reference) String() string {
	switch r.level {
	case LevelClub:
		return "club:" + r.clubID
	case LevelAgeGroup:
		return "club:" + r.clubID + "/age-group:" + r.ageGroupID
	case LevelTeam:
		return "club:" + r.clubID + "/age-group:" + r.ageGroupID + "/team:" + r.teamID
	default:
		return "scope:unset"
	}
}
