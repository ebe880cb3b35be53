package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodx/internal/controller"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/preview"
	"github.com/desertthunder/moodx/internal/services"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	api       *services.APIService
	generator services.Generator
	store     services.Store
	player    preview.Player
	opener    func(string) error
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	API       *services.APIService
	Generator services.Generator
	Store     services.Store
	Player    preview.Player
	Opener    func(string) error
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration.
//
// Missing services are built on top of API, which itself defaults to the configured base URL.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Opener == nil {
		opts.Opener = shared.OpenLink
	}
	if opts.API == nil {
		opts.API = services.NewAPIService(opts.Config.Service.BaseURL, nil)
	}
	opts.API.WithLogger(opts.Logger)

	paths := opts.Config.Service.Paths
	if opts.Generator == nil {
		opts.Generator = services.NewPlaylistService(opts.API, paths.Generate, opts.Config.Generate.City)
	}
	if opts.Store == nil {
		opts.Store = services.NewPersistenceGateway(opts.API, paths.Save, paths.Saved)
	}

	return &Runner{
		config:    opts.Config,
		api:       opts.API,
		generator: opts.Generator,
		store:     opts.Store,
		player:    opts.Player,
		opener:    opts.Opener,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// NewRunnerFromConfig wires the HTTP client, limiter and mpv player described by config.
func NewRunnerFromConfig(config *shared.Config, logger *log.Logger) (*Runner, error) {
	client, err := services.NewHTTPClient(config.Service)
	if err != nil {
		return nil, err
	}
	api := services.NewAPIService(config.Service.BaseURL, client).WithLimiter(services.NewLimiter(config.Service))

	var player preview.Player
	if config.Audio.Enabled {
		player = preview.NewMPV(preview.MPVOpts{
			Path:      config.Audio.MPVPath,
			SocketDir: config.Audio.SocketDir,
			Volume:    config.Audio.Volume,
			Logger:    logger,
		})
	}

	return NewRunner(RunnerOpts{Config: config, API: api, Player: player, Logger: logger}), nil
}

// SetLogger replaces the logger used by the runner and the components it builds.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	r.api.WithLogger(l)
	if mpv, ok := r.player.(*preview.MPV); ok {
		mpv.SetLogger(l)
	}
}

// Close releases the preview player.
func (r *Runner) Close() error {
	if r.player == nil {
		return nil
	}
	return r.player.Close()
}

func (r *Runner) moods() models.Moods {
	return models.MoodsFromConfig(r.config.Moods)
}

// controller builds a fresh controller. generator overrides the runner's when non-nil.
func (r *Runner) controller(generator services.Generator) *controller.Controller {
	if generator == nil {
		generator = r.generator
	}
	return controller.New(controller.Deps{
		Generator: generator,
		Store:     r.store,
		Preview:   preview.NewController(r.player, r.logger),
		Opener:    r.opener,
		Logger:    r.logger,
	})
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, generateCommand, savedCommand, moodsCommand, previewCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
