package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

// Services groups the usecases the handler serves.
type Services struct {
	Home        *usecase.HomeService
	Standings   *usecase.StandingsService
	Fixtures    *usecase.FixtureService
	Teams       *usecase.TeamService
	Staff       *usecase.StaffService
	Injuries    *usecase.InjuryService
	Transfers   *usecase.TransferService
	Stats       *usecase.StatsService
	Weather     *usecase.WeatherService
	MatchDetail *usecase.MatchDetailService
	Preferences *usecase.PreferenceService
}

type Handler struct {
	home        *usecase.HomeService
	standings   *usecase.StandingsService
	fixtures    *usecase.FixtureService
	teams       *usecase.TeamService
	staff       *usecase.StaffService
	injuries    *usecase.InjuryService
	transfers   *usecase.TransferService
	stats       *usecase.StatsService
	weather     *usecase.WeatherService
	matchDetail *usecase.MatchDetailService
	preferences *usecase.PreferenceService
	logger      *logging.Logger
	validator   *validator.Validate
	now         func() time.Time
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		home:        services.Home,
		standings:   services.Standings,
		fixtures:    services.Fixtures,
		teams:       services.Teams,
		staff:       services.Staff,
		injuries:    services.Injuries,
		transfers:   services.Transfers,
		stats:       services.Stats,
		weather:     services.Weather,
		matchDetail: services.MatchDetail,
		preferences: services.Preferences,
		logger:      logger.Named("httpapi"),
		validator:   validator.New(),
		now:         time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, span trace.Span, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	span.SetAttributes(attribute.Int(spanAttrKey(name), value))
	return value, nil
}
