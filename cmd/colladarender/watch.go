package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/solarlune/colladarender"
)

// WatchDelay is how long the inputs must stay unchanged before they're rendered again, so that a burst of writes from
// one save only renders once.
var WatchDelay = 200 * time.Millisecond

// watch renders the input again every time it (or, for a directory, anything directly inside it) changes, until ctx is
// done. Failed renders caused by the inputs are logged and watching continues, since the next save may fix them.
func watch(ctx context.Context, cfg *Config, input string) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "starting file watcher")
	}
	defer watcher.Close()

	// A single file is watched through its directory, so that editors replacing the file on save are still seen.
	dir, only := input, ""
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		dir, only = filepath.Dir(input), filepath.Clean(input)
	}

	if err := watcher.Add(dir); err != nil {
		return colladarender.WrapUserError(err, "can't watch %s", input)
	}

	output := outputPath(cfg, input)

	slog.Info("Watching " + input + " for changes ...")

	timer := time.NewTimer(WatchDelay)
	timer.Stop()

	for {

		select {

		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:

			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}

			// Writing the image can't set off another render.
			name := filepath.Clean(event.Name)
			if (only != "" && name != only) || name == filepath.Clean(output) || name == filepath.Clean(output+colladarender.TempSuffix) || strings.HasPrefix(filepath.Base(name), ".") {
				continue
			}

			slog.Debug("input changed", "path", event.Name, "op", event.Op.String())

			timer.Reset(WatchDelay)

		case <-timer.C:

			if err := render(cfg, input); err != nil {
				if !colladarender.IsUserError(err) {
					return err
				}
				slog.Error(err.Error())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "watching inputs")

		}

	}

}
