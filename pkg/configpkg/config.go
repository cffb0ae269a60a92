// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	Environment      string `mapstructure:"GO_ENV"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	InterestSchedule string `mapstructure:"INTEREST_SCHEDULE"`
}

var defaults = map[string]string{
	"SERVER_ADDRESS":    "0.0.0.0:8080",
	"GO_ENV":            "production",
	"LOG_LEVEL":         "info",
	"INTEREST_SCHEDULE": "",
}

// Load reads configuration from app.env under path and environment variables.
//
// A missing app.env is not an error: defaults and environment are used instead.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, errors.Wrap(err, "read config")
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decode config")
	}

	return c, nil
}
