package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/pl-dashboard/internal/domain/preference"
	"github.com/riskibarqy/pl-dashboard/internal/platform/locale"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

type updatePreferencesRequest struct {
	Timezone     *string `json:"timezone" validate:"omitempty,min=1,max=64"`
	HomeTimezone *string `json:"homeTimezone" validate:"omitempty,min=1,max=64"`
	Language     *string `json:"language" validate:"omitempty,min=2,max=35"`
}

type preferenceOptionsDTO struct {
	Timezones []locale.ZoneOption `json:"timezones"`
	Languages []string            `json:"languages"`
}

type preferencesDTO struct {
	ClientID     string               `json:"clientId"`
	Timezone     string               `json:"timezone"`
	HomeTimezone string               `json:"homeTimezone"`
	Language     string               `json:"language"`
	Options      preferenceOptionsDTO `json:"options"`
}

func preferencesToDTO(clientID string, p preference.Preferences) preferencesDTO {
	languages := locale.Languages()
	codes := make([]string, 0, len(languages))
	for _, l := range languages {
		codes = append(codes, string(l))
	}
	return preferencesDTO{
		ClientID:     clientID,
		Timezone:     p.Timezone,
		HomeTimezone: p.HomeTimezone,
		Language:     string(p.Language),
		Options: preferenceOptionsDTO{
			Timezones: locale.ZoneOptions(),
			Languages: codes,
		},
	}
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreferences")
	defer span.End()

	clientID, ok := clientIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: client id is missing from request context", usecase.ErrInvalidInput))
		return
	}

	prefs, err := h.preferences.Get(ctx, clientID)
	if err != nil {
		h.logger.WarnContext(ctx, "get preferences failed", "client_id", clientID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(clientID, prefs))
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePreferences")
	defer span.End()

	clientID, ok := clientIDFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: client id is missing from request context", usecase.ErrInvalidInput))
		return
	}

	var req updatePreferencesRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	values := make(preference.Values, len(preference.Keys()))
	if req.Timezone != nil {
		values[preference.KeyTimezone] = strings.TrimSpace(*req.Timezone)
	}
	if req.HomeTimezone != nil {
		values[preference.KeyHomeTimezone] = strings.TrimSpace(*req.HomeTimezone)
	}
	if req.Language != nil {
		raw := strings.TrimSpace(*req.Language)
		if lang, ok := locale.ParseLanguage(raw); ok {
			raw = string(lang)
		}
		values[preference.KeyLanguage] = raw
	}

	prefs, err := h.preferences.Set(ctx, clientID, values)
	if err != nil {
		h.logger.WarnContext(ctx, "update preferences failed", "client_id", clientID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preferencesToDTO(clientID, prefs))
}
