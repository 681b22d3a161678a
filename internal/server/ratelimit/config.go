package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route. A Path ending in "/"
// matches every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; 0 means unlimited
	Window time.Duration
	Burst  int // defaults to Limit
}

// Built-in limits
const (
	parsePath          = "/parse_resume"
	defaultParseLimit  = 30
	defaultParseBurst  = 5
	defaultLimit       = 300
	defaultIdleTTL     = time.Hour
	defaultCleanupTick = 5 * time.Minute
)

// LoadConfig reads rate limiting settings from the process environment.
func LoadConfig() *Config {
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from getenv. Malformed values fall back to
// their defaults.
func ConfigFromEnv(getenv func(string) string) *Config {
	env := envReader(getenv)
	if !env.boolean("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	endpoints := DefaultEndpointConfigs()
	for i := range endpoints {
		if endpoints[i].Path == parsePath {
			endpoints[i].Limit = env.integer("RATE_LIMIT_PARSE_LIMIT", endpoints[i].Limit)
			endpoints[i].Window = env.duration("RATE_LIMIT_PARSE_WINDOW", endpoints[i].Window)
		}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    env.integer("RATE_LIMIT_DEFAULT_LIMIT", defaultLimit),
		DefaultWindow:   env.duration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.duration("RATE_LIMIT_CLEANUP_INTERVAL", defaultCleanupTick),
		IdleTTL:         env.duration("RATE_LIMIT_IDLE_TTL", defaultIdleTTL),
		Whitelist:       ipSet(getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       ipSet(getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpoints,
	}
}

// DefaultEndpointConfigs returns the built-in per-route limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: parsePath, Method: "POST", Limit: defaultParseLimit, Window: time.Minute, Burst: defaultParseBurst},
	}
}

type envReader func(string) string

func (e envReader) integer(key string, fallback int) int {
	if n, err := strconv.Atoi(e(key)); err == nil {
		return n
	}
	return fallback
}

func (e envReader) boolean(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(e(key)); err == nil {
		return b
	}
	return fallback
}

func (e envReader) duration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(e(key)); err == nil {
		return d
	}
	return fallback
}

// ipSet splits a comma-separated address list
func ipSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = true
		}
	}
	return set
}
