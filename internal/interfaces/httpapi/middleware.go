package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/pl-dashboard/internal/platform/id"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestLogging")
		defer span.End()

		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.InfoContext(ctx, "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote_addr", resolveClientIP(r),
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func RequestTracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "pl-dashboard-http",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
		otelhttp.WithFilter(func(r *http.Request) bool {
			return shouldTraceRequest(r.URL.Path)
		}),
	)
}

// RequestBodyCapture records up to maxBytes of a write request's body on the
// active span. The next handler still reads the full body.
func RequestBodyCapture(maxBytes int, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		span := trace.SpanFromContext(r.Context())
		if maxBytes <= 0 || r.Body == nil || !hasRequestBody(r.Method) || !span.IsRecording() {
			next.ServeHTTP(w, r)
			return
		}

		buf := bytebufferpool.Get()
		defer bytebufferpool.Put(buf)

		if _, err := io.CopyN(buf, r.Body, int64(maxBytes)+1); err != nil && err != io.EOF {
			span.SetAttributes(attribute.String("http.request.body.error", err.Error()))
		}
		captured := buf.B
		truncated := len(captured) > maxBytes
		if truncated {
			captured = captured[:maxBytes]
		}
		span.SetAttributes(
			attribute.String("http.request.body", string(captured)),
			attribute.Bool("http.request.body.truncated", truncated),
		)

		r.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(buf.B), r.Body), Closer: r.Body}
		next.ServeHTTP(w, r)
	})
}

type readCloser struct {
	io.Reader
	io.Closer
}

func hasRequestBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func shouldTraceRequest(path string) bool {
	normalized := strings.ToLower(strings.TrimSpace(path))
	switch normalized {
	case "/healthz", "/health", "/livez", "/readyz":
		return false
	default:
		return true
	}
}

// CORS allows the configured origins. Credentials (the client cookie) are
// only allowed when origins are listed explicitly.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "" {
			continue
		}
		if candidate == "*" {
			allowAll = true
		}
		origins = append(origins, candidate)
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", clientIDHeader},
		ExposedHeaders:   []string{clientIDHeader},
		AllowCredentials: !allowAll,
		MaxAge:           600,
	}).Handler(next)
}

// ClientIdentity attaches the caller's client id to the request context,
// minting one (and setting the cookie) for first-time visitors.
func ClientIdentity(ids id.Generator, secureCookie bool, logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.ClientIdentity")
		defer span.End()

		clientID, ok := resolveClientID(r)
		if !ok {
			minted, err := ids.NewID()
			if err != nil {
				logger.ErrorContext(ctx, "mint client id failed", "error", err)
				writeInternalError(ctx, w)
				return
			}
			clientID = minted
			http.SetCookie(w, newClientCookie(clientID, secureCookie))
		}
		w.Header().Set(clientIDHeader, clientID)

		next.ServeHTTP(w, r.WithContext(withClientID(ctx, clientID)))
	})
}
