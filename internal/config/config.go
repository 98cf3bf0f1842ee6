// Package config loads mboxrender settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MBOXRENDER_LOCALE.
const EnvPrefix = "MBOXRENDER"

// Config is the application configuration.
type Config struct {
	// Path is the directory holding the mbox files.
	Path string `mapstructure:"path" yaml:"path"`

	// Addr is the HTTP listen address.
	Addr string `mapstructure:"addr" yaml:"addr"`

	// Locale selects the label table, e.g. "en" or "nl-NL".
	Locale string `mapstructure:"locale" yaml:"locale"`

	// Hyperlinks renders addresses and attachments as links in HTML output.
	Hyperlinks bool `mapstructure:"hyperlinks" yaml:"hyperlinks"`

	// Strict fails rendering when a required header field is empty.
	Strict bool `mapstructure:"strict" yaml:"strict"`

	// StaticDir holds the web viewer assets.
	StaticDir string `mapstructure:"static_dir" yaml:"static_dir"`
}

var defaults = map[string]any{
	"path":       ".",
	"addr":       ":8080",
	"locale":     "en",
	"hyperlinks": true,
	"strict":     false,
	"static_dir": "static",
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Path:       defaults["path"].(string),
		Addr:       defaults["addr"].(string),
		Locale:     defaults["locale"].(string),
		Hyperlinks: defaults["hyperlinks"].(bool),
		Strict:     defaults["strict"].(bool),
		StaticDir:  defaults["static_dir"].(string),
	}
}

// Load reads the YAML file at path, if any, and applies environment
// overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
