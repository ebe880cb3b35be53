package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the default configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
		if _, err := shared.LoadConfig(configPath); err != nil {
			return fmt.Errorf("existing config is invalid: %w", err)
		}
		return r.writePlain("Config already present at %s\n", configPath)
	}

	r.logger.Info("config file not found, creating from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Point service.base_url at your playlist service\n")
	r.writePlain("2. Run 'moodx moods' to see the available moods\n")
	return nil
}

// SetupCheck validates the active configuration and prints it as TOML.
func (r *Runner) SetupCheck(ctx context.Context, cmd *cli.Command) error {
	if err := r.config.Validate(); err != nil {
		return err
	}

	cfg := *r.config
	if cfg.Service.SessionCookie != "" {
		cfg.Service.SessionCookie = "********"
	}

	if err := toml.NewEncoder(r.output).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
