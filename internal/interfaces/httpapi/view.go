package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/platform/locale"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

// view is how one response renders instants, numbers and labels.
type view struct {
	format   locale.Formatter
	homeZone locale.Formatter
	now      time.Time
}

type viewDTO struct {
	Timezone     string `json:"timezone"`
	ZoneLabel    string `json:"zoneLabel"`
	Abbreviation string `json:"abbreviation"`
	Language     string `json:"language"`
}

func (v view) dto() viewDTO {
	return viewDTO{
		Timezone:     v.format.Zone(),
		ZoneLabel:    locale.ZoneLabel(v.format.Zone()),
		Abbreviation: v.format.Abbreviation(v.now),
		Language:     string(v.format.Language()),
	}
}

// resolveView picks the zone and language for a response: the tz and lang
// query parameters, then the client's stored preferences, then
// Accept-Language (language only), then UTC and English.
func (h *Handler) resolveView(ctx context.Context, r *http.Request) (view, error) {
	ctx, span := startSpan(ctx, "httpapi.Handler.resolveView")
	defer span.End()

	stored := h.storedPreferences(ctx)
	query := r.URL.Query()

	zone := locale.DefaultZone
	if tz := strings.TrimSpace(query.Get("tz")); tz != "" {
		if err := preference.ValidateTimezone(tz); err != nil {
			return view{}, fmt.Errorf("%w: tz: %v", usecase.ErrInvalidInput, err)
		}
		zone = tz
	} else if tz, ok := stored[preference.KeyTimezone]; ok {
		zone = tz
	}

	lang := locale.DefaultLanguage
	if raw := strings.TrimSpace(query.Get("lang")); raw != "" {
		parsed, ok := locale.ParseLanguage(raw)
		if !ok {
			return view{}, fmt.Errorf("%w: unsupported lang %q", usecase.ErrInvalidInput, raw)
		}
		lang = parsed
	} else if raw, ok := stored[preference.KeyLanguage]; ok {
		lang, _ = locale.ParseLanguage(raw)
	} else if header := strings.TrimSpace(r.Header.Get("Accept-Language")); header != "" {
		lang = locale.FromAcceptLanguage(header)
	}

	format, err := locale.NewFormatter(zone, lang)
	if err != nil {
		return view{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}

	homeZone := format
	if tz, ok := stored[preference.KeyHomeTimezone]; ok {
		if f, err := locale.NewFormatter(tz, lang); err == nil {
			homeZone = f
		}
	}

	return view{format: format, homeZone: homeZone, now: h.now()}, nil
}

// storedPreferences never fails the request: a broken store renders with
// defaults.
func (h *Handler) storedPreferences(ctx context.Context) preference.Values {
	clientID, ok := clientIDFromContext(ctx)
	if !ok || h.preferences == nil {
		return nil
	}
	values, err := h.preferences.Stored(ctx, clientID)
	if err != nil {
		h.logger.WarnContext(ctx, "load stored preferences failed", "client_id", clientID, "error", err)
		return nil
	}
	return values
}
