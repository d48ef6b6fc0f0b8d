package httpapi

import "net/http"

// scopeBasePaths are the three depths a scoped resource family is addressable
// at. One handler serves all three because unmatched wildcards resolve to "".
var scopeBasePaths = []string{
	"/v1/clubs/{clubID}",
	"/v1/clubs/{clubID}/age-groups/{ageGroupID}",
	"/v1/clubs/{clubID}/age-groups/{ageGroupID}/teams/{teamID}",
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerClubRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	authed := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAuth(verifier, fn))
	}

	authed("GET /v1/clubs", handler.ListClubs)
	authed("POST /v1/clubs", handler.CreateClub)
	authed("GET /v1/clubs/{clubID}", handler.GetClub)
	authed("PUT /v1/clubs/{clubID}", handler.UpdateClub)
	authed("POST /v1/clubs/{clubID}/archive", handler.ArchiveClub)
	authed("POST /v1/clubs/{clubID}/unarchive", handler.UnarchiveClub)

	authed("GET /v1/clubs/{clubID}/age-groups", handler.ListAgeGroups)
	authed("POST /v1/clubs/{clubID}/age-groups", handler.CreateAgeGroup)
	authed("GET /v1/clubs/{clubID}/age-groups/{ageGroupID}", handler.GetAgeGroup)
	authed("PUT /v1/clubs/{clubID}/age-groups/{ageGroupID}", handler.UpdateAgeGroup)
	authed("POST /v1/clubs/{clubID}/age-groups/{ageGroupID}/archive", handler.ArchiveAgeGroup)
	authed("POST /v1/clubs/{clubID}/age-groups/{ageGroupID}/unarchive", handler.UnarchiveAgeGroup)

	teamBase := "/v1/clubs/{clubID}/age-groups/{ageGroupID}/teams"
	authed("GET "+teamBase, handler.ListTeams)
	authed("POST "+teamBase, handler.CreateTeam)
	authed("GET "+teamBase+"/{teamID}", handler.GetTeam)
	authed("PUT "+teamBase+"/{teamID}", handler.UpdateTeam)
	authed("POST "+teamBase+"/{teamID}/archive", handler.ArchiveTeam)
	authed("POST "+teamBase+"/{teamID}/unarchive", handler.UnarchiveTeam)
	authed("GET "+teamBase+"/{teamID}/overview", handler.GetTeamOverview)
}

// registerScopedResourceRoutes mounts the drill, drill template and tactic
// families at every hierarchy depth.
func registerScopedResourceRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	for _, base := range scopeBasePaths {
		authed := func(pattern string, fn http.HandlerFunc) {
			mux.Handle(pattern, RequireAuth(verifier, fn))
		}

		authed("GET "+base+"/drills", handler.ListDrills)
		authed("POST "+base+"/drills", handler.CreateDrill)
		authed("POST "+base+"/drills/import", handler.ImportDrills)
		authed("GET "+base+"/drills/{drillID}", handler.GetDrill)
		authed("PUT "+base+"/drills/{drillID}", handler.UpdateDrill)
		authed("POST "+base+"/drills/{drillID}/archive", handler.ArchiveDrill)
		authed("POST "+base+"/drills/{drillID}/unarchive", handler.UnarchiveDrill)

		authed("GET "+base+"/drill-templates", handler.ListDrillTemplates)
		authed("POST "+base+"/drill-templates", handler.CreateDrillTemplate)
		authed("GET "+base+"/drill-templates/{templateID}", handler.GetDrillTemplate)
		authed("PUT "+base+"/drill-templates/{templateID}", handler.UpdateDrillTemplate)
		authed("POST "+base+"/drill-templates/{templateID}/archive", handler.ArchiveDrillTemplate)
		authed("POST "+base+"/drill-templates/{templateID}/unarchive", handler.UnarchiveDrillTemplate)

		authed("GET "+base+"/tactics", handler.ListTactics)
		authed("POST "+base+"/tactics", handler.CreateTactic)
		authed("GET "+base+"/tactics/{tacticID}", handler.GetTactic)
		authed("PUT "+base+"/tactics/{tacticID}", handler.UpdateTactic)
		authed("POST "+base+"/tactics/{tacticID}/archive", handler.ArchiveTactic)
		authed("POST "+base+"/tactics/{tacticID}/unarchive", handler.UnarchiveTactic)
		authed("GET "+base+"/tactics/{tacticID}/positions", handler.GetTacticPositions)
	}
}

func registerTeamScheduleRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	authed := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAuth(verifier, fn))
	}
	base := "/v1/clubs/{clubID}/age-groups/{ageGroupID}/teams/{teamID}"

	authed("GET "+base+"/players", handler.ListPlayers)
	authed("POST "+base+"/players", handler.CreatePlayer)
	authed("GET "+base+"/players/{playerID}", handler.GetPlayer)
	authed("PUT "+base+"/players/{playerID}", handler.UpdatePlayer)
	authed("POST "+base+"/players/{playerID}/archive", handler.ArchivePlayer)
	authed("POST "+base+"/players/{playerID}/unarchive", handler.UnarchivePlayer)

	authed("GET "+base+"/coaches", handler.ListCoaches)
	authed("POST "+base+"/coaches", handler.CreateCoach)
	authed("GET "+base+"/coaches/{coachID}", handler.GetCoach)
	authed("PUT "+base+"/coaches/{coachID}", handler.UpdateCoach)
	authed("POST "+base+"/coaches/{coachID}/archive", handler.ArchiveCoach)
	authed("POST "+base+"/coaches/{coachID}/unarchive", handler.UnarchiveCoach)

	authed("GET "+base+"/matches", handler.ListMatches)
	authed("POST "+base+"/matches", handler.CreateMatch)
	authed("GET "+base+"/matches/{matchID}", handler.GetMatch)
	authed("PUT "+base+"/matches/{matchID}", handler.UpdateMatch)
	authed("POST "+base+"/matches/{matchID}/archive", handler.ArchiveMatch)
	authed("POST "+base+"/matches/{matchID}/unarchive", handler.UnarchiveMatch)
	authed("GET "+base+"/matches/{matchID}/lineup", handler.GetMatchLineup)

	authed("GET "+base+"/training-sessions", handler.ListTrainingSessions)
	authed("POST "+base+"/training-sessions", handler.CreateTrainingSession)
	authed("GET "+base+"/training-sessions/{sessionID}", handler.GetTrainingSession)
	authed("PUT "+base+"/training-sessions/{sessionID}", handler.UpdateTrainingSession)
	authed("POST "+base+"/training-sessions/{sessionID}/archive", handler.ArchiveTrainingSession)
	authed("POST "+base+"/training-sessions/{sessionID}/unarchive", handler.UnarchiveTrainingSession)
}

func registerFormationRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/formations", RequireAuth(verifier, http.HandlerFunc(handler.ListFormations)))
	mux.Handle("GET /v1/formations/{formationID}", RequireAuth(verifier, http.HandlerFunc(handler.GetFormation)))
}
