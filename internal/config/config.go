package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/dogwalk/internal/ui"
)

// Keys understood in .dogwalk.yaml, as DOGWALK_* env vars and as flags.
const (
	KeyTheme    = "theme"
	KeyColor    = "color"
	KeyLogFile  = "log-file"
	KeyLogLevel = "log-level"
	KeyPlain    = "plain"
	KeyJSON     = "json"
)

// Config is the resolved runtime configuration.
type Config struct {
	Theme    ui.Theme
	Color    ui.ColorMode
	LogFile  string
	LogLevel slog.Level
	Plain    bool
	JSON     bool
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyTheme, "classic")
	v.SetDefault(KeyColor, string(ui.ColorAuto))
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPlain, false)
	v.SetDefault(KeyJSON, false)

	v.SetConfigName(".dogwalk") // .yaml is implicit
	v.SetEnvPrefix("DOGWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("DOGWALK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	return v
}

// Load reads the optional config file, layers flags on top and validates
// the result. A missing config file is not an error.
func Load(v *viper.Viper, flags *pflag.FlagSet) (*Config, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	theme, err := ui.ThemeByName(v.GetString(KeyTheme))
	if err != nil {
		return nil, err
	}
	color, err := ui.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return nil, err
	}
	level, err := parseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}
	return &Config{
		Theme:    theme,
		Color:    color,
		LogFile:  strings.TrimSpace(v.GetString(KeyLogFile)),
		LogLevel: level,
		Plain:    v.GetBool(KeyPlain),
		JSON:     v.GetBool(KeyJSON),
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
