package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Service.BaseURL != "http://127.0.0.1:5001" {
			t.Errorf("expected base URL http://127.0.0.1:5001, got %s", config.Service.BaseURL)
		}

		if config.Service.Paths.Generate != "/api/generate-playlist" {
			t.Errorf("expected generate path /api/generate-playlist, got %s", config.Service.Paths.Generate)
		}

		if len(config.Moods) != 4 {
			t.Fatalf("expected 4 default moods, got %d", len(config.Moods))
		}

		if config.Moods[0].Name != "happy" || config.Moods[0].Color != "#FFF8DC" {
			t.Errorf("expected happy/#FFF8DC first, got %s/%s", config.Moods[0].Name, config.Moods[0].Color)
		}

		if err := config.Validate(); err != nil {
			t.Errorf("default config should validate, got %v", err)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Service.BaseURL != defaultConfig.Service.BaseURL {
			t.Errorf("created config base URL doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[service]
base_url = "https://moods.example.com"
requests_per_second = 5.0

[log]
level = "debug"

[[moods]]
name = "romantic"
label = "Romantic"
color = "#FFE4E1"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Service.BaseURL != "https://moods.example.com" {
			t.Errorf("expected base URL https://moods.example.com, got %s", config.Service.BaseURL)
		}

		if config.Service.TimeoutSeconds != 20 {
			t.Errorf("expected default timeout to survive, got %d", config.Service.TimeoutSeconds)
		}

		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}

		if len(config.Moods) != 1 || config.Moods[0].Name != "romantic" {
			t.Errorf("expected moods to be replaced by file, got %+v", config.Moods)
		}
	})

	t.Run("LoadConfig Without Moods Keeps Defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[generate]\ncity = \"Lisbon\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if len(config.Moods) != 4 {
			t.Errorf("expected 4 default moods, got %d", len(config.Moods))
		}
		if config.Generate.City != "Lisbon" {
			t.Errorf("expected city Lisbon, got %s", config.Generate.City)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("ApplyEnv", func(t *testing.T) {
		t.Setenv("MOODX_BASE_URL", "http://10.0.0.2:9000")
		t.Setenv("MOODX_LOG_LEVEL", "warn")
		t.Setenv("MOODX_TIMEOUT_SECONDS", "7")
		t.Setenv("MOODX_AUDIO", "false")

		config := DefaultConfig()
		config.ApplyEnv(filepath.Join(t.TempDir(), "missing.env"))

		if config.Service.BaseURL != "http://10.0.0.2:9000" {
			t.Errorf("expected env base URL, got %s", config.Service.BaseURL)
		}
		if config.Log.Level != "warn" {
			t.Errorf("expected env log level, got %s", config.Log.Level)
		}
		if config.Service.TimeoutSeconds != 7 {
			t.Errorf("expected timeout 7, got %d", config.Service.TimeoutSeconds)
		}
		if config.Audio.Enabled {
			t.Error("expected audio to be disabled by env")
		}
	})

	t.Run("ApplyEnv From Dotenv File", func(t *testing.T) {
		envPath := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envPath, []byte("MOODX_CITY=Oslo\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("MOODX_CITY") })

		config := DefaultConfig()
		config.ApplyEnv(envPath)

		if config.Generate.City != "Oslo" {
			t.Errorf("expected city Oslo, got %s", config.Generate.City)
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name   string
			mutate func(*Config)
		}{
			{name: "bad base url", mutate: func(c *Config) { c.Service.BaseURL = "ftp://x" }},
			{name: "zero timeout", mutate: func(c *Config) { c.Service.TimeoutSeconds = 0 }},
			{name: "zero rate", mutate: func(c *Config) { c.Service.RequestsPerSecond = 0 }},
			{name: "zero burst", mutate: func(c *Config) { c.Service.Burst = 0 }},
			{name: "volume out of range", mutate: func(c *Config) { c.Audio.Volume = 101 }},
			{name: "no moods", mutate: func(c *Config) { c.Moods = nil }},
			{name: "duplicate mood", mutate: func(c *Config) { c.Moods = append(c.Moods, MoodConfig{Name: "Happy", Color: "#000000"}) }},
			{name: "bad color", mutate: func(c *Config) { c.Moods[0].Color = "yellow" }},
			{name: "unnamed mood", mutate: func(c *Config) { c.Moods[0].Name = " " }},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				config := DefaultConfig()
				tt.mutate(config)

				err := config.Validate()
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})
}
