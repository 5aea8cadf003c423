package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

const (
	appName   = "minesweeper"
	envPrefix = "MINESWEEPER"
)

type Config struct {
	Size      string `mapstructure:"size"`
	Color     bool   `mapstructure:"color"`
	MineGlyph string `mapstructure:"mine_glyph"`
	StatsPath string `mapstructure:"stats_path"`
	LogFile   string `mapstructure:"log_file"`
	LogLevel  string `mapstructure:"log_level"`

	Development bool `mapstructure:"-"`
}

// Load reads config.yaml from the user config directory, if present, and
// lets MINESWEEPER_* environment variables override it.
func Load() (*Config, error) {
	return load(viper.New(), filepath.Join(xdg.ConfigHome, appName))
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.SetDefault("size", "medium")
	v.SetDefault("color", true)
	v.SetDefault("mine_glyph", "*")
	v.SetDefault("stats_path", "")
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Development = Development()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	if _, ok := mines.PresetByName(c.Size); !ok {
		return fmt.Errorf("unknown board size %q", c.Size)
	}
	if utf8.RuneCountInString(c.MineGlyph) != 1 {
		return fmt.Errorf("mine glyph must be a single character, got %q", c.MineGlyph)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c Config) Params() mines.GameParams {
	p, _ := mines.PresetByName(c.Size)
	return p
}

func (c Config) Glyph() rune {
	r, _ := utf8.DecodeRuneInString(c.MineGlyph)
	return r
}

func (c Config) Level() logrus.Level {
	if c.Development {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"size":        c.Size,
		"color":       c.Color,
		"mine_glyph":  c.MineGlyph,
		"stats_path":  c.StatsPath,
		"log_file":    c.LogFile,
		"log_level":   c.LogLevel,
		"development": c.Development,
	}
}
