package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"pluscode/olc"
)

type Config struct {
	Code      CodeConfig      `mapstructure:"code"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Geohash   GeohashConfig   `mapstructure:"geohash"`
	Log       LogConfig       `mapstructure:"log"`
}

type CodeConfig struct {
	Length int `mapstructure:"length"`
}

// ReferenceConfig is the default location used to shorten and recover codes.
type ReferenceConfig struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

type GeohashConfig struct {
	Precision uint `mapstructure:"precision"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Load reads configuration from an optional file and PLUSCODE_* environment
// variables. An empty path searches for pluscode.yaml in . and ./configs.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("code.length", 10)
	v.SetDefault("reference.latitude", 0.0)
	v.SetDefault("reference.longitude", 0.0)
	v.SetDefault("geohash.precision", 9)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pluscode")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("pluscode")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the codec or geohash encoder would refuse.
func (c *Config) Validate() error {
	if _, err := olc.Encode(0, 0, c.Code.Length); err != nil {
		return fmt.Errorf("code.length: %w", err)
	}
	if c.Geohash.Precision < 1 || c.Geohash.Precision > 12 {
		return fmt.Errorf("geohash.precision must be between 1 and 12, got %d", c.Geohash.Precision)
	}
	return nil
}
