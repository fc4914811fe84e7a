package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

func (a *app) newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <input>...",
		Short: "Regenerate whenever an input changes",
		Long: `Run gen once, then again whenever an input file changes. Directories
(Go packages) are watched recursively. Stops on interrupt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
}

func (a *app) watch(ctx context.Context, out, errOut io.Writer, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range paths {
		if err := watchPath(watcher, p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	regenerate := func() {
		res, err := a.generate(ctx, out, paths)
		if res != nil {
			printDiagnostics(errOut, &res.diags)
		}

		if err != nil {
			a.logger.Error("generation failed", slog.String("error", err.Error()))
			return
		}

		a.logger.Info("generated", slog.Int("declarations", res.built), slog.Int("failed", len(res.diags.Errors)))
	}

	regenerate()

	trigger := make(chan struct{}, 1)

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !a.relevant(event.Name) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}

			name := event.Name
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				a.logger.Debug("input changed", slog.String("file", name))

				select {
				case trigger <- struct{}{}:
				default:
				}
			})

		case <-trigger:
			regenerate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.logger.Error("watcher error", slog.String("error", err.Error()))
		}
	}
}

// relevant filters events by the extension of the configured source.
// Generated files are ignored.
func (a *app) relevant(name string) bool {
	if strings.Contains(filepath.Base(name), ".unwrapped.") {
		return false
	}

	ext := filepath.Ext(name)

	if a.cfg.Source == "go" {
		return ext == ".go"
	}

	return ext == ".yaml" || ext == ".yml"
}

// watchPath watches a file's directory, or a directory tree. Package
// patterns such as "./models/..." are watched from their root.
func watchPath(watcher *fsnotify.Watcher, p string) error {
	root := filepath.Clean(trimPattern(p))

	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return watcher.Add(path)
		}

		return nil
	})
}

func trimPattern(p string) string {
	if p == "..." {
		return "."
	}

	return strings.TrimSuffix(p, "/...")
}
