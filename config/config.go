package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ChartWidth  int
	ChartHeight int
	ChartFormat string

	SnapshotDir     string
	SnapshotTabs    []string
	MaxConcurrency  int
	RateLimitMs     int
	MaxRetries      int
	PageTimeoutSecs int
	ChromeBin       string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ChartWidth:  getEnvInt("CHART_WIDTH", 640),
		ChartHeight: getEnvInt("CHART_HEIGHT", 400),
		ChartFormat: getEnv("CHART_FORMAT", "png"),

		SnapshotDir:     getEnv("SNAPSHOT_DIR", "./output/snapshots"),
		SnapshotTabs:    getEnvList("SNAPSHOT_TABS", []string{"overview", "active", "sold", "insights"}),
		MaxConcurrency:  getEnvInt("MAX_CONCURRENCY", 2),
		RateLimitMs:     getEnvInt("RATE_LIMIT_MS", 500),
		MaxRetries:      getEnvInt("MAX_RETRIES", 3),
		PageTimeoutSecs: getEnvInt("PAGE_TIMEOUT_SECS", 30),
		ChromeBin:       getEnv("CHROME_BIN", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
