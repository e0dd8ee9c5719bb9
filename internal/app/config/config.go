package config

import (
	"log"
	"os"
	"time"
)

type Config struct {
	HTTPAddr           string
	ChannelSecret      string
	ChannelAccessToken string
	LineBaseURL        string
	InternalToken      string
	DatabaseURL        string
	SessionTTL         time.Duration
}

func MustLoad() Config {
	return Config{
		HTTPAddr:           env("HTTP_ADDR", ":8080"),
		ChannelSecret:      mustEnv("CHANNEL_SECRET"),
		ChannelAccessToken: mustEnv("CHANNEL_ACCESS_TOKEN"),
		LineBaseURL:        env("LINE_BASE_URL", "https://api.line.me"),
		InternalToken:      mustEnv("INTERNAL_TOKEN"),
		DatabaseURL:        env("DATABASE_URL", ""),
		SessionTTL:         durationEnv("SESSION_TTL", 30*time.Minute),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func durationEnv(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid duration in env %s: %v", k, err)
	}
	return d
}
