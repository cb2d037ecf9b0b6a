package ranger

import (
	"time"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/override"
	"github.com/xy-planning-network/override/logger"
)

const (
	DefaultHost               = "localhost"
	DefaultPort               = "3000"
	DefaultServerIdleTimeout  = 120 * time.Second
	DefaultServerReadTimeout  = 5 * time.Second
	DefaultServerWriteTimeout = 5 * time.Second

	baseURLEnvVar            = "BASE_URL"
	environmentEnvVar        = "ENVIRONMENT"
	forceHTTPSEnvVar         = "FORCE_HTTPS"
	hostEnvVar               = "HOST"
	logLevelEnvVar           = "LOG_LEVEL"
	portEnvVar               = "PORT"
	rateLimitBurstEnvVar     = "RATE_LIMIT_BURST"
	rateLimitRPSEnvVar       = "RATE_LIMIT_RPS"
	serverIdleTimeoutEnvVar  = "SERVER_IDLE_TIMEOUT"
	serverReadTimeoutEnvVar  = "SERVER_READ_TIMEOUT"
	serverWriteTimeoutEnvVar = "SERVER_WRITE_TIMEOUT"
)

// A Config holds the settings a [*Ranger] reads from the environment.
type Config struct {
	// BaseURL is the origin allowed to make cross-origin requests.
	// CORS is off when empty.
	BaseURL string

	Env override.Environment

	// ForceHTTPS redirects plain HTTP requests to HTTPS.
	ForceHTTPS bool

	Host     string
	LogLevel logger.LogLevel
	Port     string

	// RateLimitRPS is how many requests per second each IP address may make.
	// Rate limiting is off when zero.
	RateLimitRPS   int
	RateLimitBurst int

	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewConfig reads a Config from environment variables,
// falling back to defaults for those unset or invalid.
func NewConfig() Config {
	return Config{
		BaseURL:        override.EnvVarOrString(baseURLEnvVar, ""),
		Env:            override.EnvVarOrEnv(environmentEnvVar, override.Development),
		ForceHTTPS:     override.EnvVarOrBool(forceHTTPSEnvVar, false),
		Host:           override.EnvVarOrString(hostEnvVar, DefaultHost),
		LogLevel:       override.EnvVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo),
		Port:           override.EnvVarOrString(portEnvVar, DefaultPort),
		RateLimitRPS:   override.EnvVarOrInt(rateLimitRPSEnvVar, 0),
		RateLimitBurst: override.EnvVarOrInt(rateLimitBurstEnvVar, 20),
		IdleTimeout:    override.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:    override.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout:   override.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}
