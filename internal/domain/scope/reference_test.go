package scope

import "testing"

func TestReference_VisibleAt_Inheritance(t *testing.T) {
	clubItem := Club("club-1")
	ageGroupItem := AgeGroup("club-1", "u12")
	teamItem := Team("club-1", "u12", "u12-red")

	clubQuery := Club("club-1")
	ageGroupQuery := AgeGroup("club-1", "u12")
	teamQuery := Team("club-1", "u12", "u12-red")

	if !clubItem.VisibleAt(clubQuery) || !clubItem.VisibleAt(ageGroupQuery) || !clubItem.VisibleAt(teamQuery) {
		t.Fatal("club definition must be visible at every level under the club")
	}
	if ageGroupItem.VisibleAt(clubQuery) {
		t.Fatal("age group definition must not leak upward to a club query")
	}
	if !ageGroupItem.VisibleAt(ageGroupQuery) || !ageGroupItem.VisibleAt(teamQuery) {
		t.Fatal("age group definition must be visible to its own age group and its teams")
	}
	if teamItem.VisibleAt(clubQuery) || teamItem.VisibleAt(ageGroupQuery) {
		t.Fatal("team definition must not leak upward")
	}
	if !teamItem.VisibleAt(teamQuery) {
		t.Fatal("team definition must be visible to its own team")
	}
}

func TestReference_VisibleAt_Siblings(t *testing.T) {
	item := AgeGroup("club-1", "u12")

	if item.VisibleAt(AgeGroup("club-1", "u14")) {
		t.Fatal("definition visible to a sibling age group")
	}
	if item.VisibleAt(Team("club-1", "u14", "u14-red")) {
		t.Fatal("definition visible to a team under a sibling age group")
	}
	if item.VisibleAt(AgeGroup("club-2", "u12")) {
		t.Fatal("definition visible across clubs")
	}
}

func TestReference_Accessors(t *testing.T) {
	ref := Team("club-1", "u12", "u12-red")

	if ref.Level() != LevelTeam {
		t.Fatalf("unexpected level: %v", ref.Level())
	}
	if ref.ClubID() != "club-1" || ref.AgeGroupID() != "u12" || ref.TeamID() != "u12-red" {
		t.Fatalf("reference lost ancestor ids: %s", ref)
	}
	if !ref.Equal(Team("club-1", "u12", "u12-red")) {
		t.Fatal("identical references must compare equal")
	}
	if ref.Equal(AgeGroup("club-1", "u12")) {
		t.Fatal("references at different levels must not compare equal")
	}
}
