package config

import (
	"fmt"
	"time"
)

// Config holds runtime configuration for the Asha bot.
type Config struct {
	AppEnv string `mapstructure:"-"`

	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Messenger MessengerConfig `mapstructure:"messenger" validate:"required"`
	Bot       BotConfig       `mapstructure:"bot"`
	State     StateConfig     `mapstructure:"state"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Jokes     JokesConfig     `mapstructure:"jokes"`
	Sentry    SentryConfig    `mapstructure:"sentry"`
}

// ServerConfig configures the webhook HTTP server.
type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoggerConfig configures the slog setup.
type LoggerConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format" validate:"omitempty,oneof=json text"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig configures the rotated log file sink.
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// MessengerConfig configures access to the Messenger platform.
type MessengerConfig struct {
	PageToken   string        `mapstructure:"page_token" validate:"required"`
	AppSecret   string        `mapstructure:"app_secret"`
	VerifyToken string        `mapstructure:"verify_token" validate:"required"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	// TargetAppID receives thread control on a safe-word handoff.
	// Defaults to the page inbox so a human can take over.
	TargetAppID string `mapstructure:"target_app_id"`
}

// BotConfig configures conversation behavior.
type BotConfig struct {
	// SafeWords trigger a thread-control handoff to a crisis handler
	// instead of the normal joke flow.
	SafeWords []string `mapstructure:"safe_words"`
}

// StateConfig selects and tunes the conversation context store.
type StateConfig struct {
	Backend string        `mapstructure:"backend" validate:"oneof=memory redis postgres"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig defines connection parameters for the Redis client.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	PoolTimeout  time.Duration `mapstructure:"pool_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
}

// PostgresConfig defines connection parameters for PostgreSQL.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN returns the PostgreSQL connection string based on config values.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// JokesConfig configures the remote joke source.
type JokesConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// SentryConfig configures error reporting.
type SentryConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	DSN              string  `mapstructure:"dsn"`
	TracesSampleRate float64 `mapstructure:"traces_sample_rate"`
}
