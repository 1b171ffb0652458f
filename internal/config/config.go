// Package config loads the process-wide configuration from the environment.
// All values are read once at startup; components receive them by injection.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	Database DatabaseConfig
	Mail     MailConfig
	JWT      JWTConfig
	Schedule ScheduleConfig

	// ActivationURL is the base URL the activation link is composed from.
	ActivationURL string
	// FrontendURL is the call-to-action target of the daily reminder mail.
	FrontendURL string
	// VerifyEmailMX enables MX-record verification of registration emails.
	VerifyEmailMX bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MailConfig struct {
	APIKey    string
	APIURL    string
	FromEmail string
	FromName  string
}

type JWTConfig struct {
	KeyPairPath string
	Lifetime    time.Duration
}

type ScheduleConfig struct {
	Timezone     string
	ReminderTime string
	DigestTime   string
}

const envFile = ".env"

// Load reads the .env file if present and assembles the configuration.
func Load() Config {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", ""),
			Password: getEnv("DB_PASS", ""),
			Name:     getEnv("DB_NAME", ""),
		},
		Mail: MailConfig{
			APIKey:    getEnv("BREVO_API_KEY", ""),
			APIURL:    getEnv("BREVO_API_URL", "https://api.brevo.com/v3/smtp/email"),
			FromEmail: getEnv("BREVO_FROM_EMAIL", ""),
			FromName:  getEnv("BREVO_FROM_NAME", "Money Manager"),
		},
		JWT: JWTConfig{
			KeyPairPath: getEnv("KEY_PAIR_PATH", "keypair.bin"),
			Lifetime:    getEnvDuration("JWT_LIFETIME", 24*time.Hour),
		},
		Schedule: ScheduleConfig{
			Timezone:     getEnv("SCHEDULE_TIMEZONE", "Asia/Kolkata"),
			ReminderTime: getEnv("REMINDER_TIME", "22:00"),
			DigestTime:   getEnv("DIGEST_TIME", "23:00"),
		},
		ActivationURL: getEnv("ACTIVATION_URL", "http://localhost:8080/api"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:5173"),
		VerifyEmailMX: getEnvBool("VERIFY_EMAIL_MX", false),
	}
}

// Validate reports configuration the server cannot start without.
func (c Config) Validate() error {
	if c.Database.User == "" || c.Database.Password == "" || c.Database.Name == "" {
		return fmt.Errorf("database environment variables not set")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("invalid SCHEDULE_TIMEZONE: %w", err)
	}
	return nil
}

// ConnectionString returns the pgx connection string for the configured database.
func (d DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Invalid boolean for %s: %q, using default", key, value)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			log.Warnf("Invalid duration for %s: %q, using default", key, value)
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}
