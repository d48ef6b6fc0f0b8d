package memory

import (
	"time"

	"github.com/pitchside/clubadmin/internal/domain/agegroup"
	"github.com/pitchside/clubadmin/internal/domain/club"
	"github.com/pitchside/clubadmin/internal/domain/coach"
	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/drilltemplate"
	"github.com/pitchside/clubadmin/internal/domain/formation"
	"github.com/pitchside/clubadmin/internal/domain/player"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/domain/tactic"
	"github.com/pitchside/clubadmin/internal/domain/team"
)

const (
	ClubIDNorthside = "club-northside"

	AgeGroupIDNorthsideU10 = "ag-northside-u10"
	AgeGroupIDNorthsideU12 = "ag-northside-u12"

	TeamIDNorthsideU12Red  = "team-northside-u12-red"
	TeamIDNorthsideU12Blue = "team-northside-u12-blue"

	FormationID433 = "fmt-11-433"
	FormationID442 = "fmt-11-442"
	FormationID231 = "fmt-7-231"
	FormationID331 = "fmt-9-331"
)

func SeedClubs() []club.Club {
	return []club.Club{
		{
			ID:        ClubIDNorthside,
			Name:      "Northside Juniors FC",
			FoundedAt: time.Date(1998, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func SeedAgeGroups() []agegroup.AgeGroup {
	return []agegroup.AgeGroup{
		{ID: AgeGroupIDNorthsideU10, ClubID: ClubIDNorthside, Name: "U10", BirthYear: 2016},
		{ID: AgeGroupIDNorthsideU12, ClubID: ClubIDNorthside, Name: "U12", BirthYear: 2014},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDNorthsideU12Red, ClubID: ClubIDNorthside, AgeGroupID: AgeGroupIDNorthsideU12, Name: "U12 Red", Short: "RED"},
		{ID: TeamIDNorthsideU12Blue, ClubID: ClubIDNorthside, AgeGroupID: AgeGroupIDNorthsideU12, Name: "U12 Blue", Short: "BLU"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-red-01", TeamID: TeamIDNorthsideU12Red, Name: "Milo Janssen", ShirtNumber: 1, PreferredFoot: "right"},
		{ID: "pl-red-04", TeamID: TeamIDNorthsideU12Red, Name: "Sara Lindqvist", ShirtNumber: 4, PreferredFoot: "left"},
		{ID: "pl-red-07", TeamID: TeamIDNorthsideU12Red, Name: "Teo Marques", ShirtNumber: 7, PreferredFoot: "right"},
		{ID: "pl-red-09", TeamID: TeamIDNorthsideU12Red, Name: "Ava Kowalski", ShirtNumber: 9, PreferredFoot: "right"},
		{ID: "pl-blue-01", TeamID: TeamIDNorthsideU12Blue, Name: "Noor El Amrani", ShirtNumber: 1, PreferredFoot: "right"},
		{ID: "pl-blue-10", TeamID: TeamIDNorthsideU12Blue, Name: "Jonas Weber", ShirtNumber: 10, PreferredFoot: "left"},
	}
}

func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: "co-red-head", TeamID: TeamIDNorthsideU12Red, Name: "Petra Novak", Role: "head", Email: "petra@northside.example"},
		{ID: "co-blue-head", TeamID: TeamIDNorthsideU12Blue, Name: "Liam O'Shea", Role: "head", Email: "liam@northside.example"},
	}
}

func SeedDrills() []drill.Drill {
	return []drill.Drill{
		{
			ID:              "drill-club-rondo",
			Name:            "Rondo 5v2",
			Category:        "Technical",
			Description:     "Possession circle focused on first touch and passing lanes.",
			Scope:           scope.Club(ClubIDNorthside),
			Attributes:      []string{"PASSING", "FIRST_TOUCH"},
			DurationMinutes: 15,
		},
		{
			ID:              "drill-club-warmup",
			Name:            "Dynamic Warmup",
			Category:        "Conditioning",
			Description:     "Progressive activation ladder before any session.",
			Scope:           scope.Club(ClubIDNorthside),
			Attributes:      []string{"MOBILITY"},
			DurationMinutes: 10,
		},
		{
			ID:              "drill-u12-pressing",
			Name:            "Pressing Triggers",
			Category:        "Tactical",
			Description:     "Recognize back-pass triggers and press as a unit.",
			Scope:           scope.AgeGroup(ClubIDNorthside, AgeGroupIDNorthsideU12),
			Attributes:      []string{"PRESSING", "POSITIONING"},
			DurationMinutes: 20,
		},
		{
			ID:              "drill-red-finishing",
			Name:            "Finishing Circuit",
			Category:        "Technical",
			Description:     "One-touch finishing from cutbacks and crosses.",
			Scope:           scope.Team(ClubIDNorthside, AgeGroupIDNorthsideU12, TeamIDNorthsideU12Red),
			Attributes:      []string{"SHOOTING"},
			DurationMinutes: 20,
		},
	}
}

func SeedDrillTemplates() []drilltemplate.Template {
	return []drilltemplate.Template{
		{
			ID:          "tpl-club-standard",
			Name:        "Standard Session",
			Category:    "Session",
			Description: "Default 60 minute session outline.",
			Scope:       scope.Club(ClubIDNorthside),
			Attributes:  []string{"PASSING"},
			Blocks: []drilltemplate.Block{
				{DrillID: "drill-club-warmup", DurationMinutes: 10},
				{DrillID: "drill-club-rondo", DurationMinutes: 20, Note: "two groups"},
				{DrillID: "drill-club-rondo", DurationMinutes: 30, Note: "expand to 7v3"},
			},
		},
	}
}

func SeedFormations() []formation.Formation {
	return []formation.Formation{
		{
			ID:        FormationID433,
			Name:      "4-3-3",
			SquadSize: 11,
			Slots: []formation.Slot{
				{SlotIndex: 0, Role: "GK", X: 0.50, Y: 0.05},
				{SlotIndex: 1, Role: "RB", X: 0.85, Y: 0.25},
				{SlotIndex: 2, Role: "RCB", X: 0.62, Y: 0.20},
				{SlotIndex: 3, Role: "LCB", X: 0.38, Y: 0.20},
				{SlotIndex: 4, Role: "LB", X: 0.15, Y: 0.25},
				{SlotIndex: 5, Role: "CDM", X: 0.50, Y: 0.40},
				{SlotIndex: 6, Role: "RCM", X: 0.65, Y: 0.55},
				{SlotIndex: 7, Role: "LCM", X: 0.35, Y: 0.55},
				{SlotIndex: 8, Role: "RW", X: 0.85, Y: 0.75},
				{SlotIndex: 9, Role: "ST", X: 0.50, Y: 0.85},
				{SlotIndex: 10, Role: "LW", X: 0.15, Y: 0.75},
			},
		},
		{
			ID:        FormationID442,
			Name:      "4-4-2",
			SquadSize: 11,
			Slots: []formation.Slot{
				{SlotIndex: 0, Role: "GK", X: 0.50, Y: 0.05},
				{SlotIndex: 1, Role: "RB", X: 0.85, Y: 0.25},
				{SlotIndex: 2, Role: "RCB", X: 0.62, Y: 0.20},
				{SlotIndex: 3, Role: "LCB", X: 0.38, Y: 0.20},
				{SlotIndex: 4, Role: "LB", X: 0.15, Y: 0.25},
				{SlotIndex: 5, Role: "RM", X: 0.85, Y: 0.50},
				{SlotIndex: 6, Role: "RCM", X: 0.62, Y: 0.50},
				{SlotIndex: 7, Role: "LCM", X: 0.38, Y: 0.50},
				{SlotIndex: 8, Role: "LM", X: 0.15, Y: 0.50},
				{SlotIndex: 9, Role: "RS", X: 0.60, Y: 0.80},
				{SlotIndex: 10, Role: "LS", X: 0.40, Y: 0.80},
			},
		},
		{
			ID:        FormationID231,
			Name:      "2-3-1",
			SquadSize: 7,
			Slots: []formation.Slot{
				{SlotIndex: 0, Role: "GK", X: 0.50, Y: 0.05},
				{SlotIndex: 1, Role: "RD", X: 0.70, Y: 0.25},
				{SlotIndex: 2, Role: "LD", X: 0.30, Y: 0.25},
				{SlotIndex: 3, Role: "RM", X: 0.80, Y: 0.55},
				{SlotIndex: 4, Role: "CM", X: 0.50, Y: 0.50},
				{SlotIndex: 5, Role: "LM", X: 0.20, Y: 0.55},
				{SlotIndex: 6, Role: "ST", X: 0.50, Y: 0.80},
			},
		},
		{
			ID:        FormationID331,
			Name:      "3-3-1",
			SquadSize: 9,
			Slots: []formation.Slot{
				{SlotIndex: 0, Role: "GK", X: 0.50, Y: 0.05},
				{SlotIndex: 1, Role: "RD", X: 0.75, Y: 0.25},
				{SlotIndex: 2, Role: "CD", X: 0.50, Y: 0.20},
				{SlotIndex: 3, Role: "LD", X: 0.25, Y: 0.25},
				{SlotIndex: 4, Role: "RM", X: 0.75, Y: 0.55},
				{SlotIndex: 5, Role: "CM", X: 0.50, Y: 0.50},
				{SlotIndex: 6, Role: "LM", X: 0.25, Y: 0.55},
				{SlotIndex: 7, Role: "AM", X: 0.50, Y: 0.70},
				{SlotIndex: 8, Role: "ST", X: 0.50, Y: 0.85},
			},
		},
	}
}

func SeedTactics() []tactic.Tactic {
	falseNine := "CF"
	dropY := 0.70

	return []tactic.Tactic{
		{
			ID:                "tac-u12-false-nine",
			Name:              "False Nine Press",
			Category:          "Attacking",
			Description:       "4-3-3 with the striker dropping between the lines.",
			Scope:             scope.AgeGroup(ClubIDNorthside, AgeGroupIDNorthsideU12),
			SquadSize:         11,
			ParentFormationID: FormationID433,
			Attributes:        []string{"PRESSING"},
			Overrides: map[int]tactic.Override{
				9: {Role: &falseNine, Y: &dropY},
			},
		},
	}
}
