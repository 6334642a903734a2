package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/pl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	defaultLeague  = 39
	apiKeyHeader   = "x-apisports-key"
	maxBodyBytes   = 8 << 20
)

var errTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
	LeagueID   int
	Season     string
	Timeout    time.Duration
	// MaxRetries is 0 by default: a failed fetch surfaces immediately.
	MaxRetries        int
	RequestsPerMinute int
	Logger            *logging.Logger
	CircuitBreaker    resilience.BreakerConfig
}

// Client talks to the api-football v3 REST API. Every call is scoped to
// one league and season.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	leagueID    int
	season      string
	maxRetries  int
	loadTimeout time.Duration
	limiter     *rate.Limiter
	logger      *logging.Logger
	breaker     *resilience.Breaker
	flight      singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("apifootball")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	leagueID := cfg.LeagueID
	if leagueID <= 0 {
		leagueID = defaultLeague
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}

	// loadTimeout bounds one shared fetch, retries and backoff included.
	retries := max(cfg.MaxRetries, 0)
	backoff := time.Duration(retries*(retries+1)/2) * time.Second
	loadTimeout := httpClient.Timeout*time.Duration(retries+1) + backoff

	breaker := resilience.NewBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.State) {
		logger.Warn("api-football circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		apiKey:      strings.TrimSpace(cfg.APIKey),
		leagueID:    leagueID,
		season:      strings.TrimSpace(cfg.Season),
		maxRetries:  retries,
		loadTimeout: loadTimeout,
		limiter:     limiter,
		logger:      logger,
		breaker:     breaker,
	}
}

func (c *Client) LeagueID() int { return c.leagueID }
func (c *Client) Season() string { return c.season }

// UpstreamError is the provider's own error report, all messages joined.
type UpstreamError struct {
	Endpoint string
	Message  string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return usecase.ErrDependencyUnavailable
}

// envelope is the common api-football response shape.
type envelope[T any] struct {
	Errors   upstreamErrors `json:"errors"`
	Response T              `json:"response"`
}

// get issues GET {base}/{endpoint}?{params} and decodes the response field
// into T. A non-empty errors field fails the call with an *UpstreamError.
func get[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (T, error) {
	var zero T
	raw, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return zero, err
	}

	var env envelope[T]
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("decode %s payload: %w", endpoint, err)
	}
	if msg := env.Errors.Join(", "); msg != "" {
		return zero, &UpstreamError{Endpoint: endpoint, Message: msg}
	}
	return env.Response, nil
}

// fetch returns the raw body. Identical in-flight requests share one call.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	endpoint = strings.Trim(endpoint, "/")
	fullURL := c.baseURL + "/" + endpoint
	if encoded := params.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	// The shared call is detached from the first caller's cancellation;
	// each caller still returns on its own ctx.
	results := c.flight.DoChan(fullURL, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		var raw []byte
		err := c.breaker.Do(loadCtx, func(ctx context.Context) error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isCircuitFailure)
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(loadCtx, "api-football circuit breaker rejected request", "endpoint", endpoint, "state", string(c.breaker.State()))
			return nil, fmt.Errorf("%w: statistics provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return raw, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-results:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	raw, ok := res.Val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", res.Val)
	}
	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}

		raw, status, err := c.do(ctx, fullURL)
		c.logger.DebugContext(ctx, "api-football response", "url", fullURL, "status", status, "attempt", attempt)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = fmt.Errorf("%w: send request: %s", errTransient, sanitize(err.Error(), c.apiKey))
		case status >= 200 && status < 300:
			return raw, nil
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errTransient, status, abbreviateBody(raw))
		default:
			return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw))
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * time.Second)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return append([]byte(nil), buf.B...), resp.StatusCode, nil
}

// isCircuitFailure counts provider-side failures only. Context errors come
// from the caller and say nothing about the provider.
func isCircuitFailure(err error) bool {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return stderrors.Is(err, errTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitize(value, secret string) string {
	value = strings.TrimSpace(value)
	if secret != "" {
		value = strings.ReplaceAll(value, secret, "REDACTED")
	}
	return value
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
