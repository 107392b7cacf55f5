package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prabalesh/uptop/internal/uptime"
)

type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Network NetworkConfig `yaml:"network"`
	Log     LogConfig     `yaml:"log"`
}

type ReportConfig struct {
	WindowDays     int           `yaml:"window_days"`
	HistoryCommand []string      `yaml:"history_command"`
	HistoryTimeout time.Duration `yaml:"history_timeout"`
}

type NetworkConfig struct {
	Interface string        `yaml:"interface"`
	DevPath   string        `yaml:"dev_path"`
	Interval  time.Duration `yaml:"interval"`
	Duration  time.Duration `yaml:"duration"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Report: ReportConfig{
			WindowDays:     1,
			HistoryCommand: []string{"last", "-x"},
			HistoryTimeout: 10 * time.Second,
		},
		Network: NetworkConfig{
			Interface: "wlan0",
			DevPath:   "/proc/net/dev",
			Interval:  5 * time.Second,
			Duration:  60 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/uptop/config.yaml, falling back to
// ~/.config/uptop/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "uptop", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "uptop", "config.yaml"), nil
}

// Load layers defaults, the YAML file at path and UPTOP_* environment
// variables. An empty path means the default location, which may be absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("UPTOP_WINDOW_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("UPTOP_WINDOW_DAYS: %w", err)
		}
		cfg.Report.WindowDays = n
	}
	if err := durationEnv("UPTOP_HISTORY_TIMEOUT", &cfg.Report.HistoryTimeout); err != nil {
		return err
	}
	if v := os.Getenv("UPTOP_INTERFACE"); v != "" {
		cfg.Network.Interface = v
	}
	if err := durationEnv("UPTOP_SAMPLE_INTERVAL", &cfg.Network.Interval); err != nil {
		return err
	}
	if err := durationEnv("UPTOP_SAMPLE_DURATION", &cfg.Network.Duration); err != nil {
		return err
	}
	if v := os.Getenv("UPTOP_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

func durationEnv(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}

func (c Config) Validate() error {
	if err := uptime.ValidateWindow(c.Report.WindowDays); err != nil {
		return fmt.Errorf("report.window_days: %w", err)
	}
	if len(c.Report.HistoryCommand) == 0 || c.Report.HistoryCommand[0] == "" {
		return errors.New("report.history_command must name a command")
	}
	if c.Report.HistoryTimeout <= 0 {
		return fmt.Errorf("report.history_timeout must be positive, got %s", c.Report.HistoryTimeout)
	}
	if c.Network.Interval <= 0 {
		return fmt.Errorf("network.interval must be positive, got %s", c.Network.Interval)
	}
	if c.Network.Duration <= 0 {
		return fmt.Errorf("network.duration must be positive, got %s", c.Network.Duration)
	}
	if c.Network.DevPath == "" {
		return errors.New("network.dev_path must not be empty")
	}
	return nil
}
