package internal

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const settleDelay = 100 * time.Millisecond

// Watcher calls OnChange for every Java source written or created under
// its directories.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	onChange func(path string)
}

// NewWatcher registers dirs and every directory below them.
func NewWatcher(logger *zap.Logger, dirs []string, onChange func(path string)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := addTree(fw, dir, nil); err != nil {
			fw.Close()
			return nil, fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	return &Watcher{watcher: fw, logger: logger, onChange: onChange}, nil
}

// addTree watches dir and every directory below it, passing each file
// found along the way to visit when visit is non-nil.
func addTree(fw *fsnotify.Watcher, dir string, visit func(path string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		if visit != nil {
			visit(path)
		}
		return nil
	})
}

// Run delivers events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addDir(event.Name)
			return
		}
	}
	w.notify(event.Name)
}

// addDir starts watching a directory created after startup. Sources
// written into it before the watch was in place are reported directly.
func (w *Watcher) addDir(dir string) {
	if err := addTree(w.watcher, dir, w.notify); err != nil {
		w.logger.Error("failed to watch new directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	w.logger.Debug("watching new directory", zap.String("dir", dir))
}

func (w *Watcher) notify(path string) {
	if !strings.HasSuffix(path, ".java") {
		return
	}
	// let editors finish writing before the unit is read
	time.Sleep(settleDelay)
	w.logger.Debug("source changed", zap.String("path", path))
	w.onChange(path)
}
