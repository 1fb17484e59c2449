package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

// Config holds all configuration for the API server
type Config struct {
	HTTP         HTTPConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	LLM          LLMConfig
	Templates    TemplateConfig
	Capabilities formschema.Capabilities
}

type HTTPConfig struct {
	Addr string
	// Allow every origin; for local development only
	CORSAllowAll bool
}

type PostgresConfig struct {
	DSN string
}

type RedisConfig struct {
	// Empty Addr disables the template cache
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type LLMConfig struct {
	// Empty APIKey disables schema drafting
	APIKey string
	Model  string
}

type TemplateConfig struct {
	// YAML file of recommended fields created at startup when missing
	SeedFile string
}

// Load reads a .env file when present, then builds a Config from
// environment variables with defaults
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Could not read .env file: %v", err)
	}

	return &Config{
		HTTP: HTTPConfig{
			Addr:         getEnv("HTTP_ADDR", ":8080"),
			CORSAllowAll: getEnvBool("CORS_ALLOW_ALL", true),
		},
		Postgres: PostgresConfig{
			DSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=password dbname=hiring port=5432 sslmode=disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: time.Duration(getEnvInt("TEMPLATE_CACHE_TTL_SEC", 300)) * time.Second,
		},
		LLM: LLMConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("LLM_MODEL", "gemini-2.5-flash"),
		},
		Templates: TemplateConfig{
			SeedFile: getEnv("TEMPLATE_SEED_FILE", ""),
		},
		Capabilities: formschema.Capabilities{
			CanEditSchema:      getEnvBool("CAN_EDIT_SCHEMA", true),
			CanManageTemplates: getEnvBool("CAN_MANAGE_TEMPLATES", true),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
