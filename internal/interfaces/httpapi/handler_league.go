package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/pl-dashboard/internal/domain/injury"
	"github.com/riskibarqy/pl-dashboard/internal/domain/transfer"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

func (h *Handler) ListInjuries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListInjuries")
	defer span.End()

	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := strings.TrimSpace(r.URL.Query().Get("team"))
	report, err := h.injuries.League(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list injuries failed", "team", filter, "error", err)
		writeError(ctx, w, err)
		return
	}
	if filter == "" {
		filter = injury.FilterAll
	}

	writeSuccess(ctx, w, http.StatusOK, injuryReportToDTO(v, report, filter))
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := r.URL.Query()
	req := usecase.TransferQuery{
		Direction: query.Get("direction"),
		Team:      query.Get("team"),
	}
	result, err := h.transfers.List(ctx, req)
	if err != nil {
		h.logger.WarnContext(ctx, "list transfers failed", "direction", req.Direction, "team", req.Team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, transferWindowsDTO{
		View:        v.dto(),
		Season:      result.Season.FirstYear,
		Direction:   defaultFilter(strings.ToLower(strings.TrimSpace(req.Direction))),
		Team:        defaultFilter(strings.TrimSpace(req.Team)),
		Total:       result.Total,
		FailedTeams: result.FailedTeams,
		Teams:       teamRefsToDTO(result.Teams),
		Winter:      transferListToDTO(v, result.Windows.Winter),
		Summer:      transferListToDTO(v, result.Windows.Summer),
		Other:       transferListToDTO(v, result.Windows.Other),
	})
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	items, err := h.stats.TopScorers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leadersToDTO(items))
}

func (h *Handler) ListTopAssists(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopAssists")
	defer span.End()

	items, err := h.stats.TopAssists(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list top assists failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leadersToDTO(items))
}

// GetFixtureDetails degrades upstream failures to available=false; only a
// malformed fixture id is an error.
func (h *Handler) GetFixtureDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetails")
	defer span.End()

	fixtureID, err := pathID(r, span, "fixtureID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchDetail.Get(ctx, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture details unavailable", "fixture_id", fixtureID, "error", err)
		writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(fixtureID, detail, false))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(fixtureID, detail, true))
}

func defaultFilter(v string) string {
	if v == "" {
		return transfer.FilterAll
	}
	return v
}
