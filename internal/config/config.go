package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Record store modes
const (
	RecordStorePostgres = "postgres"
	RecordStoreMemory   = "memory"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	// InstanceId names this process on the event bus; generated when empty.
	InstanceId       string
	ContentTopic     string
	RecordStore      string
	SnapshotCacheTTL time.Duration
	RedisSnapshotTTL time.Duration
	ShutdownTimeout  time.Duration
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI       string
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider     string // "openai", "gemini" or "ollama"
	LLMModel        string
	OpenAIBaseURL   string
	OllamaBaseURL   string
	MaxOutputTokens int
	Temperature     float64
	Timeout         time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			InstanceId:         getEnv("INSTANCE_ID", ""),
			ContentTopic:       getEnv("CONTENT_CHANGED_TOPIC_NAME", "CONTENT_CHANGED"),
			RecordStore:        getEnv("RECORD_STORE", RecordStorePostgres),
			SnapshotCacheTTL:   getEnvAsDuration("SNAPSHOT_CACHE_TTL", time.Minute),
			RedisSnapshotTTL:   getEnvAsDuration("REDIS_SNAPSHOT_TTL", 10*time.Minute),
			ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:     getEnv("LLM_PROVIDER", "openai"),
			LLMModel:        getEnv("LLM_MODEL", "gpt-4-turbo-preview"),
			OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", ""),
			MaxOutputTokens: getEnvAsInt("LLM_MAX_OUTPUT_TOKENS", 500),
			Temperature:     getEnvAsFloat("LLM_TEMPERATURE", 0.7),
			Timeout:         getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "mentorlink-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("90s") or plain seconds ("90").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if seconds, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
