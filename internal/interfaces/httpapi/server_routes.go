package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/home", handler.GetHome)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/fixtures/live", handler.ListLiveFixtures)
	mux.HandleFunc("GET /v1/fixtures/{fixtureID}/details", handler.GetFixtureDetails)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/staff", handler.ListTeamStaff)
	mux.HandleFunc("GET /v1/teams/{teamID}/weather", handler.GetTeamWeather)
	mux.HandleFunc("GET /v1/teams/{teamID}/forecast", handler.GetTeamForecast)
	mux.HandleFunc("GET /v1/injuries", handler.ListInjuries)
	mux.HandleFunc("GET /v1/transfers", handler.ListTransfers)
	mux.HandleFunc("GET /v1/stats/top-scorers", handler.ListTopScorers)
	mux.HandleFunc("GET /v1/stats/top-assists", handler.ListTopAssists)
}

func registerPreferenceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/preferences", handler.GetPreferences)
	mux.HandleFunc("PUT /v1/preferences", handler.UpdatePreferences)
}
