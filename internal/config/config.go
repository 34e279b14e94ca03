package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Port       string
	DBURL      string
	AppName    string
	AppDesc    string
	AppVersion string
	Origins    []string // CORS
	RateLimit  int      // requests per IP per minute, 0 disables
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadEnvFile merges a dotenv file into the process environment.
// Variables already set win; a missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// Load builds a Config from the current environment.
func Load() Config {
	return Config{
		Env:        env("APP_ENV", "dev"),
		Port:       env("API_PORT", "8080"),
		DBURL:      env("DATABASE_URL", "sqlite:///./tickets.db"),
		AppName:    env("APP_NAME", "Smart API"),
		AppDesc:    env("APP_DESC", "A mini ticket system"),
		AppVersion: env("APP_VERSION", "1.0.0"),
		Origins:    splitList(env("CORS_ORIGINS", "*")),
		RateLimit:  envInt("RATE_LIMIT_PER_MIN", 200),
	}
}

var (
	once   sync.Once
	cached Config
)

// Get returns the process-wide Config, loaded on first call and never reloaded.
func Get() Config {
	once.Do(func() { cached = Load() })
	return cached
}
