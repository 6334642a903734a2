package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/pl-dashboard/internal/platform/logging"
)

const (
	PreferenceStoreMemory   = "memory"
	PreferenceStoreRedis    = "redis"
	PreferenceStorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	CORSAllowedOrigins         []string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	PprofEnabled               bool
	PprofAddr                  string
	SwaggerEnabled             bool
	APIFootballBaseURL         string
	APIFootballKey             string
	APIFootballLeagueID        int
	APIFootballSeason          string
	APIFootballTimeout         time.Duration
	APIFootballMaxRetries      int
	APIFootballRPM             int
	APIFootballCircuitEnabled  bool
	APIFootballCircuitFailures int
	APIFootballCircuitOpen     time.Duration
	APIFootballCircuitHalfOpen int
	OpenWeatherBaseURL         string
	OpenWeatherKey             string
	OpenWeatherTimeout         time.Duration
	CacheEnabled               bool
	CacheTTL                   time.Duration
	LiveCacheTTL               time.Duration
	WeatherCacheTTL            time.Duration
	TransferSeasonYear         int
	TransferMaxWorkers         int
	PreferenceStore            string
	PreferenceTTL              time.Duration
	RedisURL                   string
	DBURL                      string
	DBDisablePreparedBinary    bool
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceCaptureRequestBody  bool
	UptraceRequestBodyMaxBytes int
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	LogLevel                   logging.Level
}

// Load reads the process environment, after merging an optional .env file
// (ENV_FILE, default ".env"). Variables already set win over the file.
func Load() (Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        strings.TrimSpace(getEnv("APP_SERVICE_NAME", "pl-dashboard-api")),
		ServiceVersion:     strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		PprofEnabled:       pprofEnabled,
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		SwaggerEnabled:     swaggerEnabled,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadAPIFootball(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadOpenWeather(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadCache(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadTransfers(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadPreferences(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = logLevel

	return cfg, nil
}

func loadAPIFootball(cfg *Config) error {
	cfg.APIFootballBaseURL = strings.TrimSpace(getEnv("API_FOOTBALL_BASE_URL", "https://v3.football.api-sports.io"))
	cfg.APIFootballKey = strings.TrimSpace(getEnv("API_FOOTBALL_KEY", ""))
	if cfg.APIFootballKey == "" && cfg.AppEnv == EnvProd {
		return fmt.Errorf("API_FOOTBALL_KEY is required when APP_ENV=%s", EnvProd)
	}
	cfg.APIFootballSeason = strings.TrimSpace(getEnv("API_FOOTBALL_SEASON", "2025"))
	if _, err := strconv.Atoi(cfg.APIFootballSeason); err != nil {
		return fmt.Errorf("parse API_FOOTBALL_SEASON: %w", err)
	}

	leagueID, err := getEnvAsInt("API_FOOTBALL_LEAGUE_ID", 39)
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_LEAGUE_ID: %w", err)
	}
	if leagueID <= 0 {
		return fmt.Errorf("API_FOOTBALL_LEAGUE_ID must be > 0")
	}
	cfg.APIFootballLeagueID = leagueID

	timeout, err := parsePositiveDuration("API_FOOTBALL_TIMEOUT", "15s")
	if err != nil {
		return err
	}
	cfg.APIFootballTimeout = timeout

	maxRetries, err := getEnvAsInt("API_FOOTBALL_MAX_RETRIES", 0)
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_MAX_RETRIES: %w", err)
	}
	if maxRetries < 0 {
		return fmt.Errorf("API_FOOTBALL_MAX_RETRIES must be >= 0")
	}
	cfg.APIFootballMaxRetries = maxRetries

	rpm, err := getEnvAsInt("API_FOOTBALL_RPM", 300)
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_RPM: %w", err)
	}
	if rpm < 0 {
		return fmt.Errorf("API_FOOTBALL_RPM must be >= 0")
	}
	cfg.APIFootballRPM = rpm

	circuitEnabled, err := strconv.ParseBool(getEnv("API_FOOTBALL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_CIRCUIT_ENABLED: %w", err)
	}
	cfg.APIFootballCircuitEnabled = circuitEnabled

	failures, err := getEnvAsInt("API_FOOTBALL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if failures < 1 {
		return fmt.Errorf("API_FOOTBALL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	cfg.APIFootballCircuitFailures = failures

	openTimeout, err := parsePositiveDuration("API_FOOTBALL_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return err
	}
	cfg.APIFootballCircuitOpen = openTimeout

	halfOpen, err := getEnvAsInt("API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return fmt.Errorf("parse API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpen < 1 {
		return fmt.Errorf("API_FOOTBALL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	cfg.APIFootballCircuitHalfOpen = halfOpen

	return nil
}

func loadOpenWeather(cfg *Config) error {
	cfg.OpenWeatherBaseURL = strings.TrimSpace(getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"))
	cfg.OpenWeatherKey = strings.TrimSpace(getEnv("OPENWEATHER_KEY", ""))

	timeout, err := parsePositiveDuration("OPENWEATHER_TIMEOUT", "5s")
	if err != nil {
		return err
	}
	cfg.OpenWeatherTimeout = timeout
	return nil
}

func loadCache(cfg *Config) error {
	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cfg.CacheEnabled = cacheEnabled

	if cfg.CacheTTL, err = parsePositiveDuration("CACHE_TTL", "5m"); err != nil {
		return err
	}
	if cfg.LiveCacheTTL, err = parsePositiveDuration("LIVE_CACHE_TTL", "30s"); err != nil {
		return err
	}
	if cfg.WeatherCacheTTL, err = parsePositiveDuration("WEATHER_CACHE_TTL", "10m"); err != nil {
		return err
	}
	return nil
}

func loadTransfers(cfg *Config) error {
	seasonYear, err := getEnvAsInt("TRANSFER_SEASON_YEAR", 2025)
	if err != nil {
		return fmt.Errorf("parse TRANSFER_SEASON_YEAR: %w", err)
	}
	if seasonYear < 1900 || seasonYear > 9999 {
		return fmt.Errorf("TRANSFER_SEASON_YEAR must be a four digit year")
	}
	cfg.TransferSeasonYear = seasonYear

	workers, err := getEnvAsInt("TRANSFER_MAX_WORKERS", 4)
	if err != nil {
		return fmt.Errorf("parse TRANSFER_MAX_WORKERS: %w", err)
	}
	if workers < 1 {
		return fmt.Errorf("TRANSFER_MAX_WORKERS must be >= 1")
	}
	cfg.TransferMaxWorkers = workers
	return nil
}

func loadPreferences(cfg *Config) error {
	store := strings.ToLower(strings.TrimSpace(getEnv("PREFERENCE_STORE", PreferenceStoreMemory)))
	switch store {
	case PreferenceStoreMemory, PreferenceStoreRedis, PreferenceStorePostgres:
	default:
		return fmt.Errorf("invalid PREFERENCE_STORE %q: valid values are %s, %s, %s",
			store, PreferenceStoreMemory, PreferenceStoreRedis, PreferenceStorePostgres)
	}
	cfg.PreferenceStore = store

	ttl, err := time.ParseDuration(getEnv("PREFERENCE_TTL", "8760h"))
	if err != nil {
		return fmt.Errorf("parse PREFERENCE_TTL: %w", err)
	}
	if ttl < 0 {
		return fmt.Errorf("PREFERENCE_TTL must be >= 0")
	}
	cfg.PreferenceTTL = ttl

	cfg.RedisURL = strings.TrimSpace(getEnv("REDIS_URL", ""))
	if store == PreferenceStoreRedis && cfg.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when PREFERENCE_STORE=%s", PreferenceStoreRedis)
	}

	cfg.DBURL = strings.TrimSpace(getEnv("DB_URL", ""))
	if store == PreferenceStorePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when PREFERENCE_STORE=%s", PreferenceStorePostgres)
	}

	disableBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = disableBinary
	return nil
}

func loadObservability(cfg *Config) error {
	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	captureBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	bodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if bodyMaxBytes <= 0 {
		return fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}
	cfg.UptraceEnabled = uptraceEnabled
	cfg.UptraceDSN = uptraceDSN
	cfg.UptraceCaptureRequestBody = captureBody
	cfg.UptraceRequestBodyMaxBytes = bodyMaxBytes

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	serverAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && serverAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	uploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return err
	}
	cfg.PyroscopeEnabled = pyroscopeEnabled
	cfg.PyroscopeServerAddress = serverAddress
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeUploadRate = uploadRate
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		cfg.PprofAddr = ":6060"
	}
	return nil
}

func loadDotEnv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
