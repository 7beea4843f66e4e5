package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultWatchlist is analyzed when ANALYZE_SETS is not set.
var defaultWatchlist = []string{
	"evolving skies",
	"brilliant stars",
	"lost origin",
	"silver tempest",
	"paldea evolved",
	"obsidian flames",
	"paradox rift",
	"destined rivals",
}

type Config struct {
	RapidAPIKey string
	DBPath      string
	Port        string

	Watchlist      []string
	TopCardLimit   int
	ReportInterval time.Duration
	CardStrategy   string

	CORSOrigins []string
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Config: could not load .env: %v", err)
	}

	return &Config{
		RapidAPIKey:    os.Getenv("RAPIDAPI_KEY"),
		DBPath:         getEnv("DB_PATH", "./tcg_roi.db"),
		Port:           getEnv("PORT", "8080"),
		Watchlist:      getEnvList("ANALYZE_SETS", defaultWatchlist),
		TopCardLimit:   getEnvInt("TOP_CARD_LIMIT", 20),
		ReportInterval: getEnvDuration("REPORT_INTERVAL", time.Hour),
		CardStrategy:   getEnv("CARD_STRATEGY", "resolve"),
		CORSOrigins:    getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
