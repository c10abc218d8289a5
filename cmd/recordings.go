package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lilithwittmann/voicepitch/internal/formatter"
	"github.com/lilithwittmann/voicepitch/internal/models"
	"github.com/lilithwittmann/voicepitch/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseID converts a positional recording id.
func parseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: recording id", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: recording id %q", shared.ErrInvalidArgument, raw)
	}
	return id, nil
}

// RecordingsList prints every stored recording without its samples.
func (r *Runner) RecordingsList(ctx context.Context, cmd *cli.Command) error {
	store, err := r.recordings()
	if err != nil {
		return err
	}

	recordings, err := store.ListAll(ctx, cmd.Bool("with-file"))
	if err != nil {
		return fmt.Errorf("failed to list recordings: %w", err)
	}

	r.logger.Debug("listed recordings", "count", len(recordings))

	if cmd.Bool("json") {
		return r.writeJSON(recordings, true)
	}

	text, err := formatter.RecordingsToText(recordings)
	if err != nil {
		return fmt.Errorf("failed to format recordings: %w", err)
	}
	return r.writeBytes(text)
}

// RecordingsShow prints one recording with its pitch samples.
func (r *Runner) RecordingsShow(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	store, err := r.recordings()
	if err != nil {
		return err
	}

	rec, err := store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(rec, true)
	}

	text, err := formatter.RecordingToText(rec, int(cmd.Int("per-line")))
	if err != nil {
		return fmt.Errorf("failed to format recording: %w", err)
	}
	return r.writeBytes(text)
}

// RecordingsSave stores a new recording. The pitch summary is computed from the given samples.
func (r *Runner) RecordingsSave(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.String("name"))
	if name == "" {
		return fmt.Errorf("%w: --name", shared.ErrMissingArgument)
	}

	size := cmd.Int64("size")
	if size < 0 {
		return fmt.Errorf("%w: --size must not be negative", shared.ErrInvalidArgument)
	}

	rec := models.NewRecording(name, cmd.String("file"), size, models.NewPitchRange(cmd.FloatSlice("pitch")))
	if ms := cmd.Int64("date"); ms > 0 {
		rec.Date = time.UnixMilli(ms)
	}

	store, err := r.recordings()
	if err != nil {
		return err
	}

	if _, err := store.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to save recording: %w", err)
	}

	r.logger.Info("recording saved", "id", rec.ID, "samples", len(rec.Range.Pitches))
	return r.writePlain("✓ Saved recording #%d: %s (avg %s)\n", rec.ID, rec.Name, formatter.FormatHz(rec.Range.Avg))
}

// RecordingsRename changes the audio file of a recording.
func (r *Runner) RecordingsRename(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd.StringArg("id"))
	if err != nil {
		return err
	}
	filename := strings.TrimSpace(cmd.StringArg("file"))

	store, err := r.recordings()
	if err != nil {
		return err
	}

	if err := store.UpdateFilename(ctx, id, filename); err != nil {
		return err
	}

	r.logger.Info("recording file changed", "id", id, "file", filename)
	if filename == "" {
		return r.writePlain("✓ Cleared file of recording #%d\n", id)
	}
	return r.writePlain("✓ Recording #%d now points to %s\n", id, filename)
}

// RecordingsDelete removes a recording and its samples.
func (r *Runner) RecordingsDelete(ctx context.Context, cmd *cli.Command) error {
	id, err := parseID(cmd.StringArg("id"))
	if err != nil {
		return err
	}

	store, err := r.recordings()
	if err != nil {
		return err
	}

	if err := store.Delete(ctx, id); err != nil {
		return err
	}

	r.logger.Info("recording deleted", "id", id)
	return r.writePlain("✓ Deleted recording #%d\n", id)
}
