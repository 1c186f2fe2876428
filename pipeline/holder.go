package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Holder serves the current pipeline and swaps in a new one when the
// artifact on disk changes. A failed reload keeps the previous pipeline.
type Holder struct {
	path     string
	logger   *zap.Logger
	current  atomic.Pointer[Pipeline]
	onReload func(err error)
}

type HolderOption func(*Holder)

// WithReloadHook registers a callback invoked after every reload attempt.
func WithReloadHook(fn func(err error)) HolderOption {
	return func(h *Holder) { h.onReload = fn }
}

func NewHolder(path string, logger *zap.Logger, opts ...HolderOption) (*Holder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Holder{path: path, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	h.current.Store(p)
	logger.Info("Pipeline loaded",
		zap.String("path", path),
		zap.String("name", p.Name()),
		zap.String("version", p.Version()))
	return h, nil
}

func (h *Holder) Pipeline() *Pipeline { return h.current.Load() }

func (h *Holder) Reload() error {
	p, err := Open(h.path)
	if err == nil {
		h.current.Store(p)
		h.logger.Info("Pipeline reloaded",
			zap.String("name", p.Name()),
			zap.String("version", p.Version()))
	} else {
		h.logger.Warn("Pipeline reload failed, keeping previous version", zap.Error(err))
	}
	if h.onReload != nil {
		h.onReload(err)
	}
	return err
}

// Watch reloads the pipeline whenever the artifact file is written or
// replaced. It blocks until ctx is cancelled.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create artifact watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so atomic renames over the artifact are seen.
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(h.path)
	h.logger.Info("Watching pipeline artifact", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				_ = h.Reload()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.logger.Warn("Artifact watcher error", zap.Error(err))
		}
	}
}
