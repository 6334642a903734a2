package httpapi

import (
	"net/http"
)

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	home, err := h.home.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get home failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homeDTO{
		View:      v.dto(),
		Clock:     clockToDTO(v, home.Now),
		Standings: standingsToDTO(home.Standings),
		Upcoming:  fixtureListToDTO(v, home.Upcoming, 0),
	})
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standings.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) ListLiveFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveFixtures")
	defer span.End()

	v, err := h.resolveView(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.fixtures.Live(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureListToDTO(v, items, 0))
}
