package openweather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/riskibarqy/pl-dashboard/internal/domain/weather"
	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
	"github.com/riskibarqy/pl-dashboard/internal/platform/resilience"
	"github.com/riskibarqy/pl-dashboard/internal/usecase"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultLang    = "kr"
)

var errTransient = crerr.New("openweather transient failure")

type ClientConfig struct {
	BaseURL        string
	APIKey         string
	Lang           string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client reads current conditions and the 5 day / 3 hour forecast from
// OpenWeatherMap in metric units.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	apiKey  string
	lang    string
	timeout time.Duration
	logger  *logging.Logger
	breaker *resilience.Breaker
}

var _ weather.Source = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("openweather")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	lang := strings.TrimSpace(cfg.Lang)
	if lang == "" {
		lang = defaultLang
	}

	breaker := resilience.NewBreaker(cfg.CircuitBreaker)
	breaker.OnStateChange(func(from, to resilience.State) {
		logger.Warn("openweather circuit breaker state changed", "from", string(from), "to", string(to))
	})

	return &Client{
		http: &fasthttp.Client{
			Name:                "pl-dashboard",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: time.Minute,
		},
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		lang:    lang,
		timeout: timeout,
		logger:  logger,
		breaker: breaker,
	}
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (weather.Snapshot, bool, error) {
	var payload currentPayload
	ok, err := c.get(ctx, "weather", lat, lon, &payload)
	if err != nil || !ok {
		return weather.Snapshot{}, false, err
	}
	return payload.snapshot(), true, nil
}

func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]weather.Slot, bool, error) {
	var payload forecastPayload
	ok, err := c.get(ctx, "forecast", lat, lon, &payload)
	if err != nil || !ok {
		return nil, false, err
	}

	slots := make([]weather.Slot, 0, len(payload.List))
	for _, item := range payload.List {
		at := time.Unix(item.Dt, 0).UTC()
		slots = append(slots, weather.Slot{At: at, Snapshot: item.snapshot()})
	}
	return slots, true, nil
}

// get decodes the body into out. ok is false when the provider answered
// with a cod other than 200.
func (c *Client) get(ctx context.Context, endpoint string, lat, lon float64, out any) (bool, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", c.lang)
	fullURL := c.baseURL + "/" + endpoint + "?" + params.Encode()

	var body []byte
	err := c.breaker.Do(ctx, func(ctx context.Context) error {
		var reqErr error
		body, reqErr = c.do(ctx, fullURL)
		return reqErr
	}, func(err error) bool { return crerr.Is(err, errTransient) })
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return false, fmt.Errorf("%w: weather provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "openweather request failed", "endpoint", endpoint, "error", err)
		return false, fmt.Errorf("fetch %s: %w", endpoint, err)
	}

	var head struct {
		Cod responseCode `json:"cod"`
	}
	if err := sonic.Unmarshal(body, &head); err != nil {
		return false, fmt.Errorf("decode %s payload: %w", endpoint, err)
	}
	if head.Cod != 200 {
		c.logger.DebugContext(ctx, "openweather returned no data", "endpoint", endpoint, "cod", int(head.Cod))
		return false, nil
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return false, fmt.Errorf("decode %s payload: %w", endpoint, err)
	}
	return true, nil
}

func (c *Client) do(ctx context.Context, fullURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("%w: %s", errTransient, redact(err.Error(), c.apiKey))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status := resp.StatusCode()
	if status == fasthttp.StatusTooManyRequests || status >= fasthttp.StatusInternalServerError {
		return nil, fmt.Errorf("%w: provider status=%d", errTransient, status)
	}
	// 4xx bodies still carry a cod the caller inspects.
	return append([]byte(nil), resp.Body()...), nil
}

func redact(value, secret string) string {
	if secret == "" {
		return value
	}
	return strings.ReplaceAll(value, secret, "REDACTED")
}
