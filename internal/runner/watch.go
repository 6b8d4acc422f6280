package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"license-applier/internal/common"
)

// DefaultDebounce is the quiet period before changed files are reprocessed.
const DefaultDebounce = 100 * time.Millisecond

// Watch reprocesses each of files whenever it is written or recreated. Other
// files in the watched directories are ignored. It blocks until ctx is
// cancelled. Each batch of changes is passed to onReport.
func (r *Runner) Watch(ctx context.Context, files []string, debounce time.Duration, onReport func(*Report)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	selected := make(map[string]struct{}, len(files))
	dirs := make([]string, 0, len(files))

	for _, f := range files {
		f = filepath.Clean(f)
		selected[f] = struct{}{}
		dirs = append(dirs, filepath.Dir(f))
	}

	dirs = common.SortedUnique(dirs)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	log := r.logger()
	log.Info("watching for changes", zap.Int("files", len(selected)), zap.Int("dirs", len(dirs)), zap.Duration("debounce", debounce))

	pending := map[string]struct{}{}

	timer := time.NewTimer(debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("watcher stopped")

			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}

			name := filepath.Clean(event.Name)
			if _, ok := selected[name]; !ok || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			log.Debug("file event detected", zap.String("file", name), zap.String("op", event.Op.String()))

			pending[name] = struct{}{}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}

			log.Error("file watcher error", zap.Error(err))

		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}

			clear(pending)
			slices.Sort(paths)

			report, err := r.Run(ctx, paths)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return err
			}

			if onReport != nil {
				onReport(report)
			}
		}
	}
}
