package scope

import "testing"

func TestCanMutate_CreateTeamUnderArchivedAgeGroup(t *testing.T) {
	target := AgeGroup("club-1", "u12")

	denied := CanMutate(ActionCreateChild, target, Ancestors{Club: ArchivedFlag(false)}, true)
	if denied.Allowed {
		t.Fatal("creating a team under an archived age group must be denied")
	}

	allowed := CanMutate(ActionCreateChild, target, Ancestors{Club: ArchivedFlag(false)}, false)
	if !allowed.Allowed {
		t.Fatalf("creating a team under an active age group must be allowed: %s", allowed.Reason)
	}
}

func TestCanMutate_ArchivedClubDoesNotBlockDescendants(t *testing.T) {
	ancestors := Ancestors{Club: ArchivedFlag(true), AgeGroup: ArchivedFlag(false)}

	got := CanMutate(ActionCreateChild, Team("club-1", "u12", "u12-red"), ancestors, false)
	if !got.Allowed {
		t.Fatalf("archived club alone must not block team-level creation: %s", got.Reason)
	}

	got = CanMutate(ActionCreateChild, AgeGroup("club-1", "u12"), Ancestors{Club: ArchivedFlag(true)}, false)
	if !got.Allowed {
		t.Fatalf("archived club alone must not block age-group-level creation: %s", got.Reason)
	}
}

func TestCanMutate_CreateUnderTeamGatedByAgeGroup(t *testing.T) {
	target := Team("club-1", "u12", "u12-red")

	denied := CanMutate(ActionCreateChild, target, Ancestors{
		Club:     ArchivedFlag(false),
		AgeGroup: ArchivedFlag(true),
	}, false)
	if denied.Allowed {
		t.Fatal("creation under a team must be denied while the owning age group is archived")
	}
	if denied.Reason == "" {
		t.Fatal("denial must carry a reason")
	}
}

func TestCanMutate_UpdateArchivedEntity(t *testing.T) {
	target := Team("club-1", "u12", "u12-red")
	ancestors := Ancestors{Club: ArchivedFlag(false), AgeGroup: ArchivedFlag(false)}

	if got := CanMutate(ActionUpdate, target, ancestors, true); got.Allowed {
		t.Fatal("updating an archived entity must be denied")
	}
	if got := CanMutate(ActionUpdate, target, ancestors, false); !got.Allowed {
		t.Fatalf("updating an active entity must be allowed: %s", got.Reason)
	}
}

func TestCanMutate_UnarchiveAlwaysPermitted(t *testing.T) {
	target := AgeGroup("club-1", "u12")
	ancestors := Ancestors{Club: ArchivedFlag(true), AgeGroup: ArchivedFlag(true)}

	if got := CanMutate(ActionUnarchive, target, ancestors, true); !got.Allowed {
		t.Fatalf("unarchive must always be permitted: %s", got.Reason)
	}
	if got := CanMutate(ActionUnarchive, target, ancestors, false); !got.Allowed {
		t.Fatalf("unarchive of an active entity must be permitted: %s", got.Reason)
	}
}

func TestCanMutate_GuardReturnsDecisionNotError(t *testing.T) {
	got := CanMutate(Action(99), Club("club-1"), Ancestors{}, false)
	if got.Allowed {
		t.Fatal("unknown actions must be denied")
	}
}
