package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env         string `envconfig:"APP_ENV" default:"development"`
	Port        int    `envconfig:"APP_PORT" default:"8080"`
	DB          DBConfig
	Redis       RedisConfig
	CORS        CORSConfig
	JWT         JWTConfig
	Crypto      CryptoConfig
	Simulation  SimulationConfig
	Player      PlayerConfig
	Affirmation AffirmationConfig
}

// database configuration; an empty DSN keeps everything in memory
type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// redis configuration; an empty address keeps reset tokens in the main store
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:4173,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL  time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"1h"`
	KeepSignedInTTL time.Duration `envconfig:"JWT_KEEP_SIGNED_IN_TTL" default:"720h"` // 30 days
}

// at-rest encryption of journal entries; disabled when empty
type CryptoConfig struct {
	Secret string `envconfig:"AES_SECRET_KEY"`
}

// SimulationConfig holds the fixed latencies of the account flows.
type SimulationConfig struct {
	LoginDelay    time.Duration `envconfig:"LOGIN_DELAY" default:"1s"`
	SignupDelay   time.Duration `envconfig:"SIGNUP_DELAY" default:"2s"`
	ResetDelay    time.Duration `envconfig:"RESET_DELAY" default:"2s"`
	ResendDelay   time.Duration `envconfig:"RESEND_DELAY" default:"1500ms"`
	ResetTokenTTL time.Duration `envconfig:"RESET_TOKEN_TTL" default:"30m"`
}

type PlayerConfig struct {
	TickInterval time.Duration `envconfig:"PLAYER_TICK_INTERVAL" default:"1s"`
}

// AffirmationConfig seeds the affirmation picker; 0 seeds from the clock.
type AffirmationConfig struct {
	Seed int64 `envconfig:"AFFIRMATION_SEED" default:"0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.DSN != "" && c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.JWT.AccessTokenTTL <= 0 || c.JWT.KeepSignedInTTL <= 0 {
		return fmt.Errorf("JWT token TTLs must be positive")
	}
	if n := len(c.Crypto.Secret); n != 0 && n != 16 && n != 24 && n != 32 {
		return fmt.Errorf("AES_SECRET_KEY must be 16, 24, or 32 bytes (got %d)", n)
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}
	s := c.Simulation
	if s.LoginDelay < 0 || s.SignupDelay < 0 || s.ResetDelay < 0 || s.ResendDelay < 0 {
		return fmt.Errorf("simulated delays must be non-negative")
	}
	if s.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}
	if c.Player.TickInterval <= 0 {
		return fmt.Errorf("PLAYER_TICK_INTERVAL must be positive")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Postgres=%t, Redis=%t, Encryption=%t, CORS.Origins=%d, "+
		"JWT.AccessTokenTTL=%s, JWT.KeepSignedInTTL=%s, Player.TickInterval=%s}",
		c.Env, c.Port, c.DB.DSN != "", c.Redis.Addr != "", c.Crypto.Secret != "", len(c.CORS.TrustedOrigins),
		c.JWT.AccessTokenTTL, c.JWT.KeepSignedInTTL, c.Player.TickInterval)
}
