package main

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay batches the burst of events an editor produces on save.
const settleDelay = 100 * time.Millisecond

// watchInputs calls rerun after any input file is written or recreated,
// until ctx is done. It watches the parent directories and filters events
// by file name.
func watchInputs(ctx context.Context, inputs []string, logger *slog.Logger, rerun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	watched, err := watchSet(inputs)
	if err != nil {
		return err
	}
	dirs := map[string]bool{}
	for path := range watched {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}
	logger.InfoContext(ctx, "Watching inputs", "files", len(watched))

	timer := time.NewTimer(settleDelay)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				logger.DebugContext(ctx, "Input changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(settleDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "Error watching inputs", "err", err)
		case <-timer.C:
			rerun()
		}
	}
}

// watchSet returns the absolute paths of inputs.
func watchSet(inputs []string) (map[string]bool, error) {
	watched := make(map[string]bool, len(inputs))
	for _, input := range inputs {
		if input == stdio {
			return nil, errors.New("cannot watch standard input")
		}
		abs, err := filepath.Abs(input)
		if err != nil {
			return nil, err
		}
		watched[abs] = true
	}
	return watched, nil
}
