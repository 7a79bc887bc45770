package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Gateway  GatewayConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name         string
	Port         string
	Debug        bool
	LogPath      string
	PublicURL    string // base URL customers are redirected back to
	BusinessSlug string // tenant served by the public endpoints
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type AuthConfig struct {
	SessionExpiryHours int
}

type GatewayConfig struct {
	BaseURL        string
	APIKey         string
	PortalKey      string
	TimeoutSeconds int
}

type BookingConfig struct {
	SweepIntervalSeconds int
	SweepBatchSize       int
}

func (g GatewayConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

func (b BookingConfig) SweepInterval() time.Duration {
	return time.Duration(b.SweepIntervalSeconds) * time.Second
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("GATEWAY_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SWEEP_INTERVAL_SECONDS", 60)
	viper.SetDefault("SWEEP_BATCH_SIZE", 100)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:         viper.GetString("APP_NAME"),
			Port:         viper.GetString("PORT"),
			Debug:        viper.GetBool("DEBUG"),
			LogPath:      viper.GetString("LOG_PATH"),
			PublicURL:    viper.GetString("PUBLIC_URL"),
			BusinessSlug: viper.GetString("BUSINESS_SLUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			SessionExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Gateway: GatewayConfig{
			BaseURL:        viper.GetString("GATEWAY_BASE_URL"),
			APIKey:         viper.GetString("GATEWAY_API_KEY"),
			PortalKey:      viper.GetString("GATEWAY_PORTAL_KEY"),
			TimeoutSeconds: viper.GetInt("GATEWAY_TIMEOUT_SECONDS"),
		},
		Booking: BookingConfig{
			SweepIntervalSeconds: viper.GetInt("SWEEP_INTERVAL_SECONDS"),
			SweepBatchSize:       viper.GetInt("SWEEP_BATCH_SIZE"),
		},
	}

	return config, nil
}
