// Package config loads the termsweep configuration file. Every setting has a
// default, so the file is optional and may set only a few keys.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"gopkg.in/yaml.v2"
)

const appName = "termsweep"

type Log struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
}

// Theme colours are names understood by golang.org/x/image/colornames or
// tcell, or #rrggbb values
type Theme struct {
	Background string   `yaml:"background"`
	Text       string   `yaml:"text"`
	Border     string   `yaml:"border"`
	Hidden     string   `yaml:"hidden"`
	Open       string   `yaml:"open"`
	Flag       string   `yaml:"flag"`
	Mine       string   `yaml:"mine"`
	Cursor     string   `yaml:"cursor"`
	Banner     string   `yaml:"banner"`
	Numbers    []string `yaml:"numbers"`
}

type Config struct {
	Mode     string `yaml:"mode"`
	Cascade  bool   `yaml:"cascade"`
	Seed     int64  `yaml:"seed"`
	Director string `yaml:"director"`

	// Go duration string, e.g. "300ms"
	TickInterval string `yaml:"tick_interval"`

	// Directory finished boards are saved to; empty disables saving
	SnapshotsDir string `yaml:"snapshots_dir"`
	ScoresFile   string `yaml:"scores_file"`

	Log   Log   `yaml:"log"`
	Theme Theme `yaml:"theme"`
}

func Default() Config {
	return Config{
		Mode:         game.Classic.String(),
		Cascade:      false,
		TickInterval: game.DefaultTickInterval.String(),
		ScoresFile:   defaultDataPath("scores.yaml"),
		Log: Log{
			Level:      "info",
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Theme: Theme{
			Background: "black",
			Text:       "cyan",
			Border:     "gray",
			Hidden:     "silver",
			Open:       "dimgray",
			Flag:       "orange",
			Mine:       "red",
			Cursor:     "yellow",
			Banner:     "steelblue",
			Numbers: []string{
				"dodgerblue", "limegreen", "tomato", "mediumpurple",
				"maroon", "darkcyan", "white", "silver",
			},
		},
	}
}

// DefaultPath is where the configuration file is looked for when none is
// given on the command line
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.yaml")
}

func defaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "."+appName, name)
}

// Load reads the file at path on top of the defaults. The returned error
// wraps fs.ErrNotExist when the file is missing.
func Load(path string) (Config, error) {
	cfg := Default()

	in, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(in, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := game.ParseGameMode(c.Mode); err != nil {
		return err
	}
	if _, err := c.Tick(); err != nil {
		return err
	}
	switch c.Director {
	case "", "random", "constraint":
	default:
		return fmt.Errorf("invalid director %q", c.Director)
	}
	if len(c.Theme.Numbers) != 0 && len(c.Theme.Numbers) != 8 {
		return fmt.Errorf("theme needs 8 number colours, got %d", len(c.Theme.Numbers))
	}
	return nil
}

func (c Config) GameMode() game.GameMode {
	mode, _ := game.ParseGameMode(c.Mode)
	return mode
}

func (c Config) Tick() (time.Duration, error) {
	if c.TickInterval == "" {
		return game.DefaultTickInterval, nil
	}
	tick, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid tick interval: %w", err)
	}
	if tick <= 0 {
		return 0, fmt.Errorf("tick interval must be positive, got %s", tick)
	}
	return tick, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":          c.Mode,
		"cascade":       c.Cascade,
		"seed":          c.Seed,
		"director":      c.Director,
		"tick_interval": c.TickInterval,
		"snapshots_dir": c.SnapshotsDir,
		"scores_file":   c.ScoresFile,
		"log_level":     c.Log.Level,
	}
}
