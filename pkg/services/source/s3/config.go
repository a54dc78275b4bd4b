package s3

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Bucket       string `mapstructure:"bucket" validate:"required"`
	Key          string `mapstructure:"key" validate:"required"`
	Region       string `mapstructure:"region"`
	Endpoint     string `mapstructure:"endpoint"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
}

func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse s3 config: %w", err)
	}
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("s3 config requires bucket and key")
	}
	return &cfg, nil
}
