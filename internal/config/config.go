// Package config loads the settings shared by every command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pavanpadamata/portfolio/internal/i18n"
	"github.com/pavanpadamata/portfolio/internal/markup"
	"github.com/pavanpadamata/portfolio/internal/prefs"
)

const EnvPrefix = "PORTFOLIO"

type Config struct {
	Env          string `mapstructure:"env"`
	Port         string `mapstructure:"port"`
	DBPath       string `mapstructure:"dbPath"`
	ContentDir   string `mapstructure:"contentDir"`
	DefaultTheme string `mapstructure:"defaultTheme"`
	Markup       string `mapstructure:"markup"`
	OutputDir    string `mapstructure:"outputDir"`
	BaseURL      string `mapstructure:"baseURL"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("dbPath", "portfolio.db")
	v.SetDefault("contentDir", "")
	v.SetDefault("defaultTheme", string(prefs.DefaultTheme))
	v.SetDefault("markup", string(markup.Structural))
	v.SetDefault("outputDir", "public")
	v.SetDefault("baseURL", "")
}

// Load reads the optional config file (./config.yaml unless cfgFile is set)
// and the environment into a Config. PORTFOLIO_<KEY> overrides the file and
// the bare PORT variable is honoured for the listen port.
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("port", EnvPrefix+"_PORT", "PORT"); err != nil {
		return Config{}, "", err
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, "", fmt.Errorf("read config file: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, used, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if _, ok := prefs.ParseTheme(c.DefaultTheme); !ok {
		return fmt.Errorf("config: defaultTheme must be light or dark, got %q", c.DefaultTheme)
	}
	if _, err := markup.ParseMode(c.Markup); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Port == "" {
		return errors.New("config: port is empty")
	}
	return nil
}

// Defaults is the preference snapshot for a first visit.
func (c Config) Defaults() prefs.Snapshot {
	theme, ok := prefs.ParseTheme(c.DefaultTheme)
	if !ok {
		theme = prefs.DefaultTheme
	}
	return prefs.Snapshot{Language: i18n.Default, Theme: theme}
}

// MarkupMode returns the configured post body rendering.
func (c Config) MarkupMode() markup.Mode {
	m, err := markup.ParseMode(c.Markup)
	if err != nil {
		return markup.Structural
	}
	return m
}

// Addr is the listen address for the preview server.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProduction() bool { return c.Env == "production" }
