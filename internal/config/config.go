package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers understood by db.OpenStore.
const (
	StoreFirestore = "firestore"
	StorePostgres  = "postgres"
	StoreSQLite    = "sqlite"
	StoreMongo     = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	AppEnv string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Document store
	StoreDriver string

	PgHost     string
	PgPort     string
	PgUser     string
	PgPassword string
	PgDB       string

	SQLitePath string

	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	FirestoreProjectID       string
	FirestoreCredentialsFile string

	// Cache. Empty RedisHost selects the in-memory cache.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	CacheTTL      time.Duration

	// Auth
	JWTSecret string
	TokenTTL  time.Duration

	// Per-IP rate limit on /api/v1
	RateLimitEnabled bool
	RateLimitRPS     int
	RateLimitBurst   int

	// Blob storage
	S3Region        string
	S3Bucket        string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Endpoint      string
	S3PublicBaseURL string

	// Language model
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 60)) * time.Second,
		CORSOrigins:  getEnvAsList("CORS_ORIGINS", []string{"https://*", "http://localhost:3000"}),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreFirestore)),

		PgHost:     getEnv("PG_HOST", "localhost"),
		PgPort:     getEnv("PG_PORT", "5432"),
		PgUser:     getEnv("PG_USER", ""),
		PgPassword: getEnv("PG_PASSWORD", ""),
		PgDB:       getEnv("PG_DB", "flightops"),

		SQLitePath: getEnv("SQLITE_PATH", "flightops.db"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flightops"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		FirestoreProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CacheTTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,

		JWTSecret: getEnv("JWT_SECRET", ""),
		TokenTTL:  time.Duration(getEnvAsInt("JWT_TTL_HOURS", 12)) * time.Hour,

		RateLimitEnabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
		RateLimitRPS:     getEnvAsInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 20),

		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),

		LLMBaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  getEnv("LLM_API_KEY", ""),
		LLMModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailSender:       getEnv("GMAIL_SENDER", "me"),
	}

	return config, nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
