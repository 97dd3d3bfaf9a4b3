package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the content service.
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Server  ServerConfig  `mapstructure:"server"`
	Content ContentConfig `mapstructure:"content"`
	Search  SearchConfig  `mapstructure:"search"`
}

// GeneralConfig contains general application settings.
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

func (s ServerConfig) Validate() error {
	if strings.TrimSpace(s.Address) == "" {
		return fmt.Errorf("server.address is required")
	}
	return nil
}

// ContentConfig locates the flat-file content tree.
type ContentConfig struct {
	Dir         string   `mapstructure:"dir"`
	Types       []string `mapstructure:"types"`
	DefaultType string   `mapstructure:"default_type"`
	Watch       bool     `mapstructure:"watch"`
}

func (c ContentConfig) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("content.dir is required")
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("content.types must name at least one content type")
	}
	return nil
}

// Normalize fills the default type from the type list when unset.
func (c ContentConfig) Normalize() ContentConfig {
	if strings.TrimSpace(c.DefaultType) == "" && len(c.Types) > 0 {
		c.DefaultType = c.Types[0]
	}
	return c
}

// SearchConfig controls the autocomplete index.
type SearchConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxResults int  `mapstructure:"max_results"`
}

// Normalize applies defaults for unset search values.
func (s SearchConfig) Normalize() SearchConfig {
	if s.MaxResults <= 0 {
		s.MaxResults = 10
	}
	return s
}

// Load reads configuration from the given file, or from config.{yaml,...} in
// the working directory when path is empty. Environment variables prefixed
// RECEPTBANKEN_ override file values (RECEPTBANKEN_SERVER_ADDRESS, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("general.log_level", "info")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("content.dir", "content")
	v.SetDefault("content.types", []string{"recipes", "articles", "authors"})
	v.SetDefault("content.watch", true)
	v.SetDefault("search.enabled", true)
	v.SetDefault("search.max_results", 10)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("RECEPTBANKEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Running purely on defaults and environment is fine; only an
		// explicitly named file must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Content = cfg.Content.Normalize()
	cfg.Search = cfg.Search.Normalize()

	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Content.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
