package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CatalogDSN   string
	SeedDemoUser bool
}

// Load reads configuration from the environment. Values in an optional .env
// file are applied first without overriding variables already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	return &Config{
		Port: getEnvOrDefault("PORT", "8080"),

		JWTSecret:   getEnvOrDefault("JWT_SECRET", "secret"),
		JWTIssuer:   getEnvOrDefault("JWT_ISSUER", "http://0.0.0.0:8080/"),
		JWTAudience: getEnvOrDefault("JWT_AUDIENCE", "http://0.0.0.0:8080/hello"),
		// 60 seconds matches the tokens issued by the first version of the API.
		JWTTTL: getDurationOrDefault("JWT_TTL", 60*time.Second),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		CacheTTL:  getDurationOrDefault("CACHE_TTL", 1*time.Minute),

		KafkaBrokers: getListOrDefault("KAFKA_BROKERS"),
		KafkaTopic:   getEnvOrDefault("KAFKA_TOPIC", "shop-events"),

		CatalogDSN:   os.Getenv("CATALOG_DSN"),
		SeedDemoUser: getBoolOrDefault("SEED_DEMO_USER", false),
	}
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDurationOrDefault(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Err(err).Msgf("Invalid %s, using %s", key, def)
		return def
	}
	// A zero TTL means "never expire" to redis and an already expired token.
	if d <= 0 {
		log.Warn().Msgf("%s must be positive, using %s", key, def)
		return def
	}
	return d
}

func getBoolOrDefault(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		log.Warn().Err(err).Msgf("Invalid %s, using %t", key, def)
		return def
	}
	return b
}

func getListOrDefault(key string) []string {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
