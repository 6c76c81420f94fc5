package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SeedNone    = "none"
	SeedIfEmpty = "if-empty"
	SeedReseed  = "reseed"

	// DogsViewJoined returns dog name, size and owner username.
	DogsViewJoined = "joined"
	// DogsViewRaw returns dog rows as stored, without the owner join.
	DogsViewRaw = "raw"
)

type DB struct {
	DbHOST       string
	DbPORT       string
	DbUSER       string
	DbPASSWORD   string
	DbNAME       string
	DbSSLMODE    string
	DbADMINNAME  string
	MaxOpenConns int
}

type Log struct {
	Level  string
	Format string
}

// Redis configures the optional walker summary cache; an empty Addr disables it.
type Redis struct {
	Addr       string
	Password   string
	DB         int
	SummaryTTL time.Duration
}

type Config struct {
	ServerPort      int
	DB              DB
	Redis           Redis
	Log             Log
	SeedMode        string
	DogsView        string
	ShutdownTimeout time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:       getEnv("DB_HOST", "localhost"),
		DbPORT:       getEnv("DB_PORT", "5432"),
		DbUSER:       getEnv("DB_USER", "postgres"),
		DbPASSWORD:   getEnv("DB_PASSWORD", "password"),
		DbNAME:       getEnv("DB_NAME", "dogwalkservice"),
		DbSSLMODE:    getEnv("DB_SSLMODE", "disable"),
		DbADMINNAME:  getEnv("DB_ADMIN_NAME", "postgres"),
		MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		DB:         LoadDB(),
		Redis: Redis{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			SummaryTTL: parseDuration(getEnv("SUMMARY_CACHE_TTL", "30s"), 30*time.Second),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		SeedMode:        getEnv("SEED_MODE", SeedIfEmpty),
		DogsView:        getEnv("DOGS_VIEW", DogsViewJoined),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
	}
}

// Validate rejects values the service cannot act on.
func (c *Config) Validate() error {
	if !slices.Contains([]string{SeedNone, SeedIfEmpty, SeedReseed}, c.SeedMode) {
		return fmt.Errorf("unknown SEED_MODE %q", c.SeedMode)
	}

	if !slices.Contains([]string{DogsViewJoined, DogsViewRaw}, c.DogsView) {
		return fmt.Errorf("unknown DOGS_VIEW %q", c.DogsView)
	}

	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.DB.MaxOpenConns)
	}

	if c.Redis.Addr != "" && c.Redis.SummaryTTL <= 0 {
		return fmt.Errorf("SUMMARY_CACHE_TTL must be positive, got %s", c.Redis.SummaryTTL)
	}

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort)
	}

	return nil
}

// DSN builds a lib/pq connection string for the named database.
func (d DB) DSN(dbName string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		dbName,
		d.DbSSLMODE,
	)
}
