package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	UI  UIConfig
}

// APIConfig points the client at the AgroConnect backend.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// AGROCONNECT_, e.g. AGROCONNECT_API_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "http://127.0.0.1:8000")
	v.SetDefault("api.timeout_seconds", 15)
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.date_format", "02/01/2006")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("AGROCONNECT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "agroconnect"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("AGROCONNECT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
