package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [files...]",
		Short: "Check files again whenever they are written",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w, err := newWatcher(args)
			if err != nil {
				return err
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			if err := opts.check(cmd, out, args); err != nil {
				opts.logger.Info("initial check failed", "err", err)
			}
			return w.run(ctx, func(path string) {
				opts.recheck(cmd, out, path)
			})
		},
	}
}

// recheck checks a file that changed and logs a failure.
func (o *options) recheck(cmd *cobra.Command, w io.Writer, path string) {
	o.logger.Debug("changed", "file", path)
	if err := o.check(cmd, w, []string{path}); err != nil {
		o.logger.Info("check failed", "file", path, "err", err)
	}
}

// watcher reports writes to a fixed set of files. It watches their
// directories so that files replaced by rename keep being reported.
type watcher struct {
	fs    *fsnotify.Watcher
	files map[string]string // absolute path -> path as given
}

func newWatcher(paths []string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &watcher{fs: fs, files: make(map[string]string)}

	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			fs.Close()
			return nil, err
		}
		w.files[abs] = path

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return w, nil
}

// run calls changed for every write to a watched file until ctx is done.
func (w *watcher) run(ctx context.Context, changed func(path string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if path, ok := w.files[filepath.Clean(ev.Name)]; ok {
				changed(path)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func (w *watcher) Close() error {
	return w.fs.Close()
}
