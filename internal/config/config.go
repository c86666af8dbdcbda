package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port        string
	Env         string
	ClientURL   string
	PostgresURL string
	UploadDir   string

	JWTSecret string
	JWTTTL    time.Duration

	AI          AIConfig
	Translation TranslationConfig
	Cache       CacheConfig
}

// AIConfig configures the completion client.
type AIConfig struct {
	Provider     string
	APIKey       string
	BaseURL      string
	Model        string
	ChatModel    string
	QuizMaxToken int
	Timeout      time.Duration
	Referer      string
	Title        string
}

type TranslationConfig struct {
	URL         string
	Timeout     time.Duration
	Concurrency int
	CacheTTL    time.Duration
}

type CacheConfig struct {
	Driver        string
	RedisAddr     string
	RedisPrefix   string
	MaxEntries    int
	SweepInterval time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	provider := strings.ToLower(getEnvWithDefault("AI_PROVIDER", "openai"))
	direct := openAIDirect(provider)

	return &Config{
		Port:        getEnvWithDefault("PORT", "5000"),
		Env:         getEnvWithDefault("APP_ENV", "development"),
		ClientURL:   getEnvWithDefault("CLIENT_URL", "http://localhost:3000"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		UploadDir:   getEnvWithDefault("UPLOAD_DIR", "uploads"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getEnvDuration("JWT_TTL", time.Hour),

		AI: AIConfig{
			Provider:     provider,
			APIKey:       aiAPIKey(provider),
			BaseURL:      getEnvWithDefault("AI_BASE_URL", defaultBaseURL(direct)),
			Model:        getEnvWithDefault("AI_MODEL", defaultModel(provider, direct)),
			ChatModel:    getEnvWithDefault("AI_CHAT_MODEL", defaultChatModel(provider)),
			QuizMaxToken: getEnvInt("AI_QUIZ_MAX_TOKENS", 1000),
			Timeout:      getEnvDuration("AI_TIMEOUT", 60*time.Second),
			Referer:      getEnvWithDefault("AI_REFERER", "http://localhost:3000"),
			Title:        getEnvWithDefault("AI_TITLE", "LanguageLearningApp"),
		},

		Translation: TranslationConfig{
			URL:         getEnvWithDefault("TRANSLATION_URL", "https://api.mymemory.translated.net/get"),
			Timeout:     getEnvDuration("TRANSLATION_TIMEOUT", 5*time.Second),
			Concurrency: getEnvInt("TRANSLATION_CONCURRENCY", 5),
			CacheTTL:    getEnvDuration("TRANSLATION_CACHE_TTL", 24*time.Hour),
		},

		Cache: CacheConfig{
			Driver:        strings.ToLower(getEnvWithDefault("CACHE_DRIVER", "memory")),
			RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
			RedisPrefix:   getEnvWithDefault("REDIS_PREFIX", "lingua:"),
			MaxEntries:    getEnvInt("CACHE_MAX_ENTRIES", 10000),
			SweepInterval: getEnvDuration("CACHE_SWEEP_INTERVAL", time.Minute),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

func aiAPIKey(provider string) string {
	if provider == "gemini" {
		return os.Getenv("GEMINI_API_KEY")
	}
	if key := os.Getenv("OPENROUTER_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}

// openAIDirect reports whether only an OpenAI key is configured, so requests go to
// api.openai.com rather than OpenRouter.
func openAIDirect(provider string) bool {
	if provider != "openai" {
		return false
	}
	return strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY")) == "" &&
		strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != ""
}

func defaultBaseURL(direct bool) string {
	if direct {
		return "https://api.openai.com/v1"
	}
	return "https://openrouter.ai/api/v1"
}

func defaultModel(provider string, direct bool) string {
	switch {
	case provider == "gemini":
		return "gemini-1.5-flash"
	case direct:
		return "gpt-3.5-turbo"
	}
	return "openai/gpt-3.5-turbo"
}

func defaultChatModel(provider string) string {
	if provider == "gemini" {
		return "gemini-1.5-flash"
	}
	return "gpt-3.5-turbo"
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
