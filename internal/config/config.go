package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Console  ConsoleConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	LogLevel         string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	DocsDir          string
}

// BackendConfig points the console at the banking REST backend
type BackendConfig struct {
	BaseURL                 string
	Timeout                 time.Duration
	CircuitBreakerThreshold int
	CircuitBreakerCooldown  time.Duration
	MaxResponseBytes        int64
}

type ConsoleConfig struct {
	PageSize   int
	AlertTTL   time.Duration
	SessionTTL time.Duration
}

// DatabaseConfig configures the console audit trail store.
// Driver is "postgres" or "sqlite"; sqlite uses Path.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Path            string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AuditEnabled    bool

	// AuditRetention is how long audit entries are kept; zero keeps them forever
	AuditRetention     time.Duration
	// AuditPruneSchedule is the cron spec of the retention job
	AuditPruneSchedule string
	MigrationsPath     string
}

// RedisConfig enables the shared session store when Addr is set
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			DocsDir:      getEnv("DOCS_DIR", "docs"),
		},
		Backend: BackendConfig{
			BaseURL:                 strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8081"), "/"),
			Timeout:                 getDurationEnv("BACKEND_TIMEOUT", 10*time.Second),
			CircuitBreakerThreshold: getIntEnv("BACKEND_CB_THRESHOLD", 5),
			CircuitBreakerCooldown:  getDurationEnv("BACKEND_CB_COOLDOWN", 30*time.Second),
			MaxResponseBytes:        int64(getIntEnv("BACKEND_MAX_RESPONSE_BYTES", 10<<20)),
		},
		Console: ConsoleConfig{
			PageSize:   getIntEnv("CONSOLE_PAGE_SIZE", 12),
			AlertTTL:   getDurationEnv("CONSOLE_ALERT_TTL", 2*time.Second),
			SessionTTL: getDurationEnv("CONSOLE_SESSION_TTL", 8*time.Hour),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "console_user"),
			Password:        getEnv("DB_PASSWORD", "console_password"),
			Name:            getEnv("DB_NAME", "bank_console"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			Path:            getEnv("DB_PATH", "file::memory:?cache=shared"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AuditEnabled:    getBoolEnv("AUDIT_ENABLED", true),

			AuditRetention:     getDurationEnv("AUDIT_RETENTION", 0),
			AuditPruneSchedule: getEnv("AUDIT_PRUNE_SCHEDULE", "@every 1h"),
			MigrationsPath:     getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	if config.Console.PageSize <= 0 {
		config.Console.PageSize = 12
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	if c.IsSQLite() {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// MigrationURL is the golang-migrate database URL for postgres
func (c *DatabaseConfig) MigrationURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *DatabaseConfig) IsSQLite() bool {
	return c.Driver == "sqlite"
}

func (c *RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Addr is the listen address of the console API
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
