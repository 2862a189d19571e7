package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jshotsmedia/studio/internal/db"
)

type Config struct {
	ListenAddr string
	DBPath     string
	MediaPath  string
	SiteURL    string

	ChatBackend     string
	AnthropicAPIKey string
	AnthropicModel  string
	OllamaHost      string
	OllamaModel     string

	AdminPIN   string
	GalleryPIN string

	BookingDelay time.Duration

	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, with a best-effort .env
// file for development. The database defaults to in-memory: site state is
// meant to live only as long as the process.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DBPath:     getEnv("DB_PATH", db.InMemory),
		MediaPath:  getEnv("MEDIA_PATH", "/data/media"),
		SiteURL:    getEnv("SITE_URL", "https://jshots.com"),

		ChatBackend:     getEnv("CHAT_BACKEND", "anthropic"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),

		AdminPIN:   getEnv("ADMIN_PIN", "admin"),
		GalleryPIN: getEnv("GALLERY_PIN", "admin"),

		BookingDelay: getDuration("BOOKING_SUBMIT_DELAY", time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
