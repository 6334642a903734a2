package httpapi

import (
	"net/http"
)

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, span, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.teams.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team page failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := teamPageDTO{
		View:     v.dto(),
		Team:     teamInfoToDTO(page.Standing.Team, page.Info, page.HasInfo),
		Standing: standingRowToDTO(page.Standing, tableFormLength),
		Form:     page.Form,
		Fixtures: teamFixturesDTO{
			Past:     fixtureListToDTO(v, page.Fixtures.Past, teamID),
			Upcoming: fixtureListToDTO(v, page.Fixtures.Upcoming, teamID),
		},
		Squad:    squadToDTO(page.Squad),
		Injuries: injuryEntriesToDTO(v, page.Injuries),
	}
	if page.HasStadium {
		ground := stadiumToDTO(v, page.Stadium)
		out.Stadium = &ground
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListTeamStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStaff")
	defer span.End()

	teamID, err := pathID(r, span, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	coaches, err := h.staff.Current(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list staff failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, coachesToDTO(v, coaches, teamID))
}

// GetTeamWeather answers with available=false rather than an error when the
// weather provider has nothing.
func (h *Handler) GetTeamWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamWeather")
	defer span.End()

	teamID, err := pathID(r, span, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	current, err := h.weather.Current(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentWeatherToDTO(v, current))
}

func (h *Handler) GetTeamForecast(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamForecast")
	defer span.End()

	teamID, err := pathID(r, span, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	forecast, err := h.weather.Forecast(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, forecastToDTO(v, forecast))
}
