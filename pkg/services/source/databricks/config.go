package databricks

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/spf13/viper"
)

type Config struct {
	Host     string `mapstructure:"host"`
	Token    string `mapstructure:"token"`
	HTTPPath string `mapstructure:"http_path" validate:"required"`
	Catalog  string `mapstructure:"catalog"`
	Schema   string `mapstructure:"schema"`

	// Profile takes host and token from a .databrickscfg profile when they
	// are not set directly.
	Profile      string `mapstructure:"profile"`
	ProfilesFile string `mapstructure:"profiles_file"`
}

func LoadConfig(profilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse databricks config: %w", err)
	}
	return &cfg, nil
}

// resolveProfile fills host and token from the .databrickscfg profile.
func (c *Config) resolveProfile(ctx context.Context) error {
	if c.Profile == "" || (c.Host != "" && c.Token != "") {
		return nil
	}

	path := c.ProfilesFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, ".databrickscfg")
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to create config registry: %w", err)
	}
	profile, err := registry.GetConfig(ctx, c.Profile)
	if err != nil {
		available, listErr := registry.GetProfiles(ctx)
		if listErr != nil || len(available) == 0 {
			return fmt.Errorf("%w in %s", err, path)
		}
		return fmt.Errorf("%w in %s, available profiles: %s", err, path, strings.Join(available, ", "))
	}

	if c.Host == "" {
		c.Host = profile.Host
	}
	if c.Token == "" {
		c.Token = profile.Token
	}
	return nil
}

// DSN builds a databricks-sql-go connection string.
func (c *Config) DSN() (string, error) {
	if c.Host == "" || c.Token == "" || c.HTTPPath == "" {
		return "", fmt.Errorf("databricks config requires host, token and http_path")
	}

	host := strings.TrimSuffix(strings.TrimPrefix(c.Host, "https://"), "/")
	dsn := fmt.Sprintf("token:%s@%s%s", c.Token, host, c.HTTPPath)

	params := url.Values{}
	if c.Catalog != "" {
		params.Set("catalog", c.Catalog)
	}
	if c.Schema != "" {
		params.Set("schema", c.Schema)
	}
	if qp := params.Encode(); qp != "" {
		dsn = dsn + "?" + qp
	}
	return dsn, nil
}
