package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Echo selects where the console mirrors formatted records.
type Echo string

const (
	EchoNone   Echo = "none"
	EchoStdout Echo = "stdout"
	EchoStderr Echo = "stderr"
)

// Config holds the devlog settings.
type Config struct {
	Enabled         bool
	Prefix          string
	Suffix          string
	Echo            Echo
	RefreshInterval time.Duration
	LogLevel        string
	Environment     string
	DemoInterval    time.Duration
}

const (
	defaultConfigPath   = "~/.config/devlog/config.toml"
	defaultRefresh      = time.Second
	defaultDemoInterval = 300 * time.Millisecond
	defaultLogLevel     = "info"
	defaultEnvironment  = "development"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Enabled:         true,
		Echo:            EchoNone,
		RefreshInterval: defaultRefresh,
		LogLevel:        defaultLogLevel,
		Environment:     defaultEnvironment,
		DemoInterval:    defaultDemoInterval,
	}
}

// Load locates and parses the devlog config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Enabled        *bool  `toml:"enabled"`
		Prefix         string `toml:"prefix"`
		Suffix         string `toml:"suffix"`
		Echo           string `toml:"echo"`
		RefreshMS      int    `toml:"refresh_ms"`
		LogLevel       string `toml:"log_level"`
		Environment    string `toml:"environment"`
		DemoIntervalMS int    `toml:"demo_interval_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.Enabled != nil {
		cfg.Enabled = *raw.Enabled
	}
	cfg.Prefix = strings.TrimSpace(raw.Prefix)
	cfg.Suffix = strings.TrimSpace(raw.Suffix)

	if echo := strings.ToLower(strings.TrimSpace(raw.Echo)); echo != "" {
		switch Echo(echo) {
		case EchoNone, EchoStdout, EchoStderr:
			cfg.Echo = Echo(echo)
		default:
			return Config{}, fmt.Errorf("invalid echo %q: want none, stdout or stderr", raw.Echo)
		}
	}

	if raw.RefreshMS > 0 {
		cfg.RefreshInterval = time.Duration(raw.RefreshMS) * time.Millisecond
	}
	if raw.DemoIntervalMS > 0 {
		cfg.DemoInterval = time.Duration(raw.DemoIntervalMS) * time.Millisecond
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if env := strings.TrimSpace(raw.Environment); env != "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg, nil
}

// EchoWriter returns the stream selected by Echo, or nil when echo is off.
func (c Config) EchoWriter() io.Writer {
	switch c.Echo {
	case EchoStdout:
		return os.Stdout
	case EchoStderr:
		return os.Stderr
	default:
		return nil
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
