package eval

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReportFunc receives the outcome of each re-evaluation triggered by a
// file change.
type ReportFunc func(path string, res *Result, err error)

// Watcher re-evaluates statement files whenever they change on disk.
type Watcher struct {
	engine     *Engine
	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	paths      []string
	report     ReportFunc
	isWatching bool
}

// NewWatcher creates a Watcher over the given file or directory paths.
func NewWatcher(engine *Engine, logger *zap.Logger, paths []string, report ReportFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		engine:  engine,
		logger:  logger,
		watcher: fsw,
		paths:   paths,
		report:  report,
	}, nil
}

// Start registers the watch paths and begins processing events in the
// background.
func (w *Watcher) Start() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, path := range w.paths {
		err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding path to watcher: %w", err)
		}
		// plain files are watched directly
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("error adding path to watcher: %w", err)
			}
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

// Stop ends the watch and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isWatching {
		w.logger.Warn("not watching")
	}
	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !hasDesiredExtension(event.Name) && !w.isWatchedFile(event.Name) {
		return
	}

	// wait a moment so editors that write in several steps produce one run
	time.Sleep(100 * time.Millisecond)

	res, err := w.engine.RunFile(event.Name)
	if w.report != nil {
		w.report(event.Name, res, err)
		return
	}
	if err != nil {
		w.logger.Error("evaluation failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.logger.Info("evaluated", zap.String("file", event.Name), zap.Bool("result", res.Value))
}

func (w *Watcher) isWatchedFile(name string) bool {
	for _, p := range w.paths {
		if p == name {
			return true
		}
	}
	return false
}
