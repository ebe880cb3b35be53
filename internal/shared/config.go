package shared

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Service  ServiceConfig  `toml:"service"`
	Generate GenerateConfig `toml:"generate"`
	Audio    AudioConfig    `toml:"audio"`
	Log      LogConfig      `toml:"log"`
	Moods    []MoodConfig   `toml:"moods"`
}

// ServiceConfig describes the remote playlist and persistence service.
type ServiceConfig struct {
	BaseURL           string      `toml:"base_url"`
	TimeoutSeconds    int         `toml:"timeout_seconds"`
	RequestsPerSecond float64     `toml:"requests_per_second"`
	Burst             int         `toml:"burst"`
	SessionCookie     string      `toml:"session_cookie"`
	CookieName        string      `toml:"cookie_name"`
	Paths             PathsConfig `toml:"paths"`
}

// PathsConfig contains the endpoint paths, relative to the base URL.
type PathsConfig struct {
	Generate string `toml:"generate"`
	Save     string `toml:"save"`
	Saved    string `toml:"saved"`
}

// GenerateConfig contains optional hints sent along with generate requests.
type GenerateConfig struct {
	City string `toml:"city"`
}

// AudioConfig controls the mpv-backed preview player.
type AudioConfig struct {
	Enabled   bool   `toml:"enabled"`
	MPVPath   string `toml:"mpv_path"`
	SocketDir string `toml:"socket_dir"`
	Volume    int    `toml:"volume"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MoodConfig declares one selectable mood and its theme color.
type MoodConfig struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	Color string `toml:"color"`
}

// Timeout returns the per-request timeout.
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	moods := config.Moods
	config.Moods = nil
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(config.Moods) == 0 {
		config.Moods = moods
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv loads the given dotenv files (missing files are ignored) and overrides config values from MOODX_* variables.
func (c *Config) ApplyEnv(files ...string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	c.Service.BaseURL = getEnvWithDefault("MOODX_BASE_URL", c.Service.BaseURL)
	c.Service.SessionCookie = getEnvWithDefault("MOODX_SESSION_COOKIE", c.Service.SessionCookie)
	c.Service.TimeoutSeconds = getEnvAsIntWithDefault("MOODX_TIMEOUT_SECONDS", c.Service.TimeoutSeconds)
	c.Generate.City = getEnvWithDefault("MOODX_CITY", c.Generate.City)
	c.Audio.MPVPath = getEnvWithDefault("MOODX_MPV_PATH", c.Audio.MPVPath)
	c.Log.Level = getEnvWithDefault("MOODX_LOG_LEVEL", c.Log.Level)

	if v, ok := os.LookupEnv("MOODX_AUDIO"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		}
	}
}

// Validate checks the configuration for values the client cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Service.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: service.base_url must be an http(s) URL, got %q", ErrInvalidConfig, c.Service.BaseURL)
	}
	if c.Service.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: service.timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.Service.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: service.requests_per_second must be positive", ErrInvalidConfig)
	}
	if c.Service.Burst < 1 {
		return fmt.Errorf("%w: service.burst must be at least 1", ErrInvalidConfig)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		return fmt.Errorf("%w: audio.volume must be between 0 and 100", ErrInvalidConfig)
	}
	if len(c.Moods) == 0 {
		return fmt.Errorf("%w: at least one mood is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Moods))
	for _, m := range c.Moods {
		name := strings.ToLower(strings.TrimSpace(m.Name))
		if name == "" {
			return fmt.Errorf("%w: mood without a name", ErrInvalidConfig)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate mood %q", ErrInvalidConfig, name)
		}
		seen[name] = true
		if !hexColor.MatchString(m.Color) {
			return fmt.Errorf("%w: mood %q has invalid color %q", ErrInvalidConfig, name, m.Color)
		}
	}

	return nil
}

func getEnvWithDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsIntWithDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
