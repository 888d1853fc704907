package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string
	RedisURL     string
	KafkaBrokers []string
	EventTopic   string
	Environment  string
	MatchLimit   int
	CacheTTLSec  int
}

// LoadConfig reads configuration from the environment, with a .env file as an
// optional overlay. RedisURL and KafkaBrokers are empty by default; the
// corresponding components are disabled when unset.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; env vars alone are enough.
	_ = godotenv.Load()

	matchLimit, err := strconv.Atoi(getEnv("MATCH_LIMIT", "5"))
	if err != nil || matchLimit < 1 {
		matchLimit = 5
	}

	cacheTTL, err := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	if err != nil || cacheTTL < 0 {
		cacheTTL = 300
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "career-finder.db"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: brokers,
		EventTopic:   getEnv("EVENT_TOPIC", "career-finder.events"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		MatchLimit:   matchLimit,
		CacheTTLSec:  cacheTTL,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
