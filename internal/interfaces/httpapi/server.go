package httpapi

import (
	"net/http"

	"github.com/riskibarqy/pl-dashboard/internal/platform/id"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

// RouterConfig carries the transport-level switches of the router.
type RouterConfig struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	SecureCookie       bool
	// RequestBodyMaxBytes > 0 records write request bodies on spans.
	RequestBodyMaxBytes int
}

func NewRouter(handler *Handler, ids id.Generator, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("http")

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.SwaggerEnabled)
	registerDashboardRoutes(mux, handler)
	registerPreferenceRoutes(mux, handler)

	identified := ClientIdentity(ids, cfg.SecureCookie, logger, mux)
	logged := RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, identified)))
	return RequestTracing(RequestBodyCapture(cfg.RequestBodyMaxBytes, logged))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
