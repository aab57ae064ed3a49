package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"propbind/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-validate a binding file every time it is saved",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		path := args[0]

		return watchFile(cmd.Context(), path, func() error {
			_, err := checkFile(out, path)
			return err
		}, nil)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchFile runs check once and again after each change to path, until ctx
// is done. The parent directory is watched so that editors replacing the
// file by rename are seen. ready, if not nil, is closed once the watch is
// registered.
func watchFile(ctx context.Context, path string, check func() error, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	if err := check(); err != nil {
		return err
	}

	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !changed(ev, abs) {
				continue
			}

			logger.Debug("watch %s: %s", path, ev.Op)

			if err := check(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch %s: %v", path, err)
		}
	}
}

// changed reports whether ev rewrote the file at abs.
func changed(ev fsnotify.Event, abs string) bool {
	if filepath.Clean(ev.Name) != abs {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
