package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Email  EmailConfig
}

type ServerConfig struct {
	Port        string
	DatabaseURL string
	CORSOrigins string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type EmailConfig struct {
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	SMTPFrom   string
	StaffInbox string
	DevMode    bool // log emails instead of sending
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			DatabaseURL: getEnv("DATABASE_URL", "concierge.db"),
			CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDuration("TOKEN_TTL", 7*24*time.Hour),
		},
		Email: EmailConfig{
			SMTPHost:   getEnv("SMTP_HOST", "localhost"),
			SMTPPort:   getInt("SMTP_PORT", 1025),
			SMTPUser:   getEnv("SMTP_USER", ""),
			SMTPPass:   getEnv("SMTP_PASS", ""),
			SMTPFrom:   getEnv("SMTP_FROM", "noreply@maison-des-sables.fr"),
			StaffInbox: getEnv("STAFF_INBOX", "contact@maison-des-sables.fr"),
			DevMode:    getBool("EMAIL_DEV_MODE", true),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
