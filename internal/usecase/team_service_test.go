package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchside/clubadmin/internal/infrastructure/repository/memory"
)

func TestTeamService_Create(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	created, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, CreateTeamInput{
		Name:  "U12 Green",
		Short: "GRN",
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if created.AgeGroupID != memory.AgeGroupIDNorthsideU12 {
		t.Fatalf("unexpected age group id: %s", created.AgeGroupID)
	}

	got, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, created.ID)
	if err != nil {
		t.Fatalf("get created team: %v", err)
	}
	if got.Name != "U12 Green" {
		t.Fatalf("unexpected name: %s", got.Name)
	}
}

func TestTeamService_Create_ArchivedAgeGroupBlocks(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	archiveSeedAgeGroup(t, t.Context(), f, memory.AgeGroupIDNorthsideU12)

	_, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, CreateTeamInput{Name: "U12 Green"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTeamService_Create_ArchivedClubDoesNotBlock(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	archiveSeedClub(t, t.Context(), f)

	_, err := svc.Create(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, CreateTeamInput{Name: "U12 Green"})
	if err != nil {
		t.Fatalf("archived club must not block team creation, got %v", err)
	}
}

func TestTeamService_Update_ArchivedTeamBlocked(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	archiveSeedTeam(t, t.Context(), f, memory.TeamIDNorthsideU12Red)

	_, err := svc.Update(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, UpdateTeamInput{Name: "Renamed"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTeamService_Unarchive_AlwaysAllowed(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	archiveSeedAgeGroup(t, t.Context(), f, memory.AgeGroupIDNorthsideU12)
	archiveSeedTeam(t, t.Context(), f, memory.TeamIDNorthsideU12Red)

	got, err := svc.SetArchived(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, false)
	if err != nil {
		t.Fatalf("unarchive must always be permitted, got %v", err)
	}
	if got.IsArchived {
		t.Fatal("team still archived after unarchive")
	}
}

func TestTeamService_Get_UnknownPath(t *testing.T) {
	f := newFixtureRepos()
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, nil)

	_, err := svc.Get(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU10, memory.TeamIDNorthsideU12Red)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for team addressed through the wrong age group, got %v", err)
	}
}

type recordingNotifier struct {
	events []ArchiveEvent
}

func (n *recordingNotifier) NotifyArchiveChanged(_ context.Context, event ArchiveEvent) {
	n.events = append(n.events, event)
}

func TestTeamService_SetArchived_NotifiesEvent(t *testing.T) {
	f := newFixtureRepos()
	notifier := &recordingNotifier{}
	svc := NewTeamService(f.teams, f.hierarchy, f.ids, notifier)

	if _, err := svc.SetArchived(t.Context(), memory.ClubIDNorthside, memory.AgeGroupIDNorthsideU12, memory.TeamIDNorthsideU12Red, true); err != nil {
		t.Fatalf("archive team: %v", err)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 archive event, got %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.Resource != "team" || event.ResourceID != memory.TeamIDNorthsideU12Red || !event.Archived {
		t.Fatalf("unexpected archive event: %+v", event)
	}
}
