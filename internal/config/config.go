package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the dashboard's runtime settings. Everything is supplied via
// environment variables with sensible defaults; the API base URL is never
// hard-coded outside of its default.
type Config struct {
	APIBaseURL  string
	TokenPath   string
	RabbitMQURL string        // empty disables the order-event consumer
	HTTPTimeout time.Duration // zero means requests never time out
	LogLevel    string
}

// Load reads configuration from the environment.
func Load() Config {
	viper.SetDefault("API_BASE_URL", "http://127.0.0.1:8000/api")
	viper.SetDefault("TOKEN_PATH", defaultTokenPath())
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("HTTP_TIMEOUT", time.Duration(0))
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	return Config{
		APIBaseURL:  viper.GetString("API_BASE_URL"),
		TokenPath:   viper.GetString("TOKEN_PATH"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		HTTPTimeout: viper.GetDuration("HTTP_TIMEOUT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "kopiadmin", "session.json")
}
