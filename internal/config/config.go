// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Gacha    GachaConfig    `mapstructure:"gacha"`
	Games    GamesConfig    `mapstructure:"games"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// LedgerConfig holds ledger-wide settings.
type LedgerConfig struct {
	DefaultBalance   int64         `mapstructure:"default_balance"`
	MaxDailyBet      int64         `mapstructure:"max_daily_bet"`
	GamblingCooldown time.Duration `mapstructure:"gambling_cooldown"`
}

// GachaConfig holds gacha settings.
type GachaConfig struct {
	PullCost int64 `mapstructure:"pull_cost"`
}

// GamesConfig holds per-game settings.
type GamesConfig struct {
	Slots       SlotsConfig       `mapstructure:"slots"`
	HigherLower HigherLowerConfig `mapstructure:"higher_lower"`
	Roulette    RouletteConfig    `mapstructure:"roulette"`
	RPS         RPSConfig         `mapstructure:"rps"`
}

// SlotsConfig holds slot machine settings.
type SlotsConfig struct {
	EntryCost int64 `mapstructure:"entry_cost"`
}

// HigherLowerConfig holds higher/lower settings.
type HigherLowerConfig struct {
	MaxBet int64 `mapstructure:"max_bet"`
}

// RouletteConfig holds roulette settings.
type RouletteConfig struct {
	EntryCost int64 `mapstructure:"entry_cost"`
}

// RPSConfig holds rock-paper-scissors settings.
type RPSConfig struct {
	Stake int64 `mapstructure:"stake"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. DATABASE_HOST, SERVER_ADDR, GACHA_PULL_COST.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we can use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "gacha")
	v.SetDefault("database.name", "gacha")
	v.SetDefault("database.pool_size", 20)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")

	v.SetDefault("ledger.default_balance", 100)
	v.SetDefault("ledger.max_daily_bet", 1000)
	v.SetDefault("ledger.gambling_cooldown", "30s")

	v.SetDefault("gacha.pull_cost", 10)

	v.SetDefault("games.slots.entry_cost", 5)
	v.SetDefault("games.higher_lower.max_bet", 1000)
	v.SetDefault("games.roulette.entry_cost", 10)
	v.SetDefault("games.rps.stake", 5)
}
