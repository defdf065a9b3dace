package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/locale"
)

// Priority: flags > TADA_* environment > config file > defaults.

const (
	envPrefix      = "TADA"
	configDirName  = ".tada"
	configFileName = "config.yaml"
)

// Config holds the screen settings. Tasks themselves are never stored.
type Config struct {
	Theme          string `mapstructure:"theme" yaml:"theme"`
	Locale         string `mapstructure:"locale" yaml:"locale"`
	TitleCharLimit int    `mapstructure:"title_char_limit" yaml:"title_char_limit"`
	AltScreen      bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	Debug          bool   `mapstructure:"debug" yaml:"debug"`
	LogFile        string `mapstructure:"log_file" yaml:"log_file"`
}

var Themes = []string{"classic", "neon", "mono"}

func Default() *Config {
	return &Config{
		Theme:          "classic",
		Locale:         "en",
		TitleCharLimit: 200,
		AltScreen:      true,
		Debug:          false,
		LogFile:        "tada-debug.log",
	}
}

// DefaultPath is ~/.tada/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load merges defaults, the YAML file at path (or the default location when
// path is empty), TADA_* variables and any flags set in fs. A missing
// default file is not an error; a missing explicit file is.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("title_char_limit", d.TitleCharLimit)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if fs != nil {
		for _, name := range []string{"theme", "locale", "debug"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	known := false
	for _, t := range Themes {
		if t == c.Theme {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown theme %q (want one of %s)", c.Theme, strings.Join(Themes, ", "))
	}
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = Default().Locale
	}
	if !locale.Supports(c.Locale) {
		return fmt.Errorf("unsupported locale %q (want one of %s)", c.Locale, locale.SupportedList())
	}
	if c.TitleCharLimit <= 0 {
		return fmt.Errorf("title_char_limit must be positive, got %d", c.TitleCharLimit)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}
	return string(b), nil
}
