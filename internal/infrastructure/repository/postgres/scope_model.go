package postgres

import "github.com/pitchside/clubadmin/internal/domain/scope"

// Scoped tables store the definition scope as three columns: the club id is
// always set, the age group and team ids only when the definition sits at
// that depth.
func scopeToColumns(ref scope.Reference) (clubID string, ageGroupID, teamID *string) {
	clubID = ref.ClubID()
	if id := ref.AgeGroupID(); id != "" {
		ageGroupID = &id
	}
	if id := ref.TeamID(); id != "" {
		teamID = &id
	}
	return clubID, ageGroupID, teamID
}

func scopeFromColumns(clubID string, ageGroupID, teamID *string) scope.Reference {
	switch {
	case teamID != nil && ageGroupID != nil:
		return scope.Team(clubID, *ageGroupID, *teamID)
	case ageGroupID != nil:
		return scope.AgeGroup(clubID, *ageGroupID)
	default:
		return scope.Club(clubID)
	}
}
