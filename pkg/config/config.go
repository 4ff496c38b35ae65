package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	GRPCPort    int
	HTTPPort    int
	CartAPIAddr string

	// CartStore selects the cart backend: memory, postgres, redis or firestore.
	CartStore string

	Postgres  PostgresConfig
	Redis     RedisConfig
	Firestore FirestoreConfig

	// StoreCurrency is the ISO 4217 code every catalog price and cart total uses.
	StoreCurrency string

	LookupTimeout     time.Duration
	LookupConcurrency int
	CommitMaxAttempts int

	JWTSecret          string
	CORSAllowedOrigins []string

	Tracing TracingConfig
}

type PostgresConfig struct {
	Host string
	Port int
	User string
	Pass string
	DB   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	Insecure    bool
	SampleRatio float64
}

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set take precedence.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnvInt("HTTP_PORT", 8080),
		GRPCPort:    getEnvInt("GRPC_PORT", 8081),
		CartAPIAddr: getEnv("CART_API_ADDR", "localhost:8081"),
		CartStore:   strings.ToLower(getEnv("CART_STORE", "postgres")),
		Postgres: PostgresConfig{
			Host: getEnv("POSTGRES_HOST", "localhost"),
			Port: getEnvInt("POSTGRES_PORT", 5432),
			User: getEnv("POSTGRES_USER", "shopping"),
			Pass: getEnv("POSTGRES_PASSWORD", "shoppingpassword"),
			DB:   getEnv("POSTGRES_DB", "shopping_db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getEnv("FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS_FILE", ""),
		},
		StoreCurrency:      strings.ToUpper(strings.TrimSpace(getEnv("STORE_CURRENCY", "AED"))),
		LookupTimeout:      getEnvDuration("CART_LOOKUP_TIMEOUT", 2*time.Second),
		LookupConcurrency:  getEnvInt("CART_LOOKUP_CONCURRENCY", 10),
		CommitMaxAttempts:  getEnvInt("CART_COMMIT_MAX_ATTEMPTS", 3),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Tracing: TracingConfig{
			Enabled:     getEnvBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Insecure:    getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: getEnvFloat("OTEL_SAMPLER_RATIO", 0.1),
		},
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvBool(key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
