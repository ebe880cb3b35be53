package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/moodx/internal/controller"
	"github.com/desertthunder/moodx/internal/formatter"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/services"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
	"github.com/urfave/cli/v3"
)

// Generate requests a playlist for the mood argument and prints or writes it.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	var generator services.Generator
	if city := cmd.String("city"); city != "" {
		generator = services.NewPlaylistService(r.api, r.config.Service.Paths.Generate, city)
	}

	ctl, err := r.generate(ctx, cmd.StringArg("mood"), generator)
	if err != nil {
		return err
	}
	defer ctl.Close()

	playlist := ctl.Current()

	if output := cmd.String("output"); output != "" {
		if err := r.export(playlist, format, output); err != nil {
			return err
		}
	} else {
		data, err := formatter.Export(playlist, format)
		if err != nil {
			return err
		}
		if err := r.writePlain("%s", data); err != nil {
			return err
		}
	}

	if cmd.Bool("save") {
		return r.save(ctx, ctl)
	}
	return nil
}

// generate resolves input to a mood and drives a controller through the request.
func (r *Runner) generate(ctx context.Context, input string, generator services.Generator) (*controller.Controller, error) {
	if input == "" {
		return nil, fmt.Errorf("%w: mood (one of %v)", shared.ErrMissingArgument, r.moods().Names())
	}

	mood, err := r.moods().Resolve(input)
	if err != nil {
		return nil, err
	}
	if mood.Name != input {
		r.logger.Info("resolved mood", "input", input, "mood", mood.Name)
	}

	ctl := r.controller(generator)
	ctl.Run(ctx, ctl.SelectMood(ctx, mood))

	region := ctl.Snapshot().Playlist
	if region.State != view.Success {
		ctl.Close()
		return nil, fmt.Errorf("%w: %s", shared.ErrGeneration, region.Message)
	}

	r.logger.Debug("playlist ready", "mood", mood.Name, "songs", len(region.Entries))
	return ctl, nil
}

func (r *Runner) export(playlist *models.Playlist, format formatter.Format, output string) error {
	if format == formatter.Markdown {
		result, err := formatter.WriteMarkdownExport(playlist, output, func(err error) {
			r.logger.Warn("markdown export", "error", err)
		})
		if err != nil {
			return err
		}
		r.logger.Info("playlist exported", "files", result.Files)
		return nil
	}

	path, err := formatter.WriteExport(playlist, format, output)
	if err != nil {
		return err
	}
	r.logger.Info("playlist exported", "path", path)
	return nil
}

// save persists the controller's playlist and reports the notice it raised.
func (r *Runner) save(ctx context.Context, ctl *controller.Controller) error {
	task := ctl.Save(ctx)
	if task == nil {
		return shared.ErrNoPlaylist
	}
	ctl.Run(ctx, task)

	notice := ctl.Snapshot().Notice
	if notice == nil {
		return errors.New("save finished without a result")
	}
	if notice.Kind == view.NoticeError {
		return fmt.Errorf("%w: %s", shared.ErrSaveFailed, notice.Text)
	}

	r.logger.Info(notice.Text)
	return nil
}
