package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	pstrings "roster/pkg/platform/strings"
)

// Server captures process level configuration.
type Server struct {
	Addr           string
	LogLevel       string
	LogFormat      string
	SeedCountries  bool
	RequestTimeout time.Duration
	Audit          Audit
}

// Audit selects the audit sink. An empty broker list keeps events in memory.
type Audit struct {
	KafkaBrokers []string
	KafkaTopic   string
}

// Defaults applied when the environment leaves a key unset.
const (
	DefaultAddr           = ":8080"
	DefaultAuditTopic     = "roster.audit"
	DefaultRequestTimeout = 30 * time.Second
)

// Load reads an optional .env file into the environment and then builds the
// config. A missing .env is not an error.
func Load(files ...string) Server {
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:           envOr("ROSTER_ADDR", DefaultAddr),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		LogFormat:      envOr("LOG_FORMAT", "json"),
		SeedCountries:  envBool("SEED_COUNTRIES", true),
		RequestTimeout: envDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		Audit: Audit{
			KafkaBrokers: pstrings.SplitList(os.Getenv("AUDIT_KAFKA_BROKERS"), ","),
			KafkaTopic:   envOr("AUDIT_KAFKA_TOPIC", DefaultAuditTopic),
		},
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
