package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store hands out the current Site. When it is backed by a file the Site can
// be swapped by Reload; readers always see a complete, validated value.
type Store struct {
	current atomic.Pointer[Site]
	fs      afero.Fs
	path    string
}

// NewStore wraps a fixed Site.
func NewStore(site *Site) *Store {
	s := &Store{}
	s.current.Store(site)
	return s
}

// Open builds a Store from path on fs, or from the embedded catalog when path
// is empty.
func Open(fs afero.Fs, path string) (*Store, error) {
	if path == "" {
		site, err := Default()
		if err != nil {
			return nil, err
		}
		return NewStore(site), nil
	}

	site, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	s := NewStore(site)
	s.fs = fs
	s.path = path
	return s, nil
}

// Site returns the current content.
func (s *Store) Site() *Site {
	return s.current.Load()
}

// Path is the backing file, or "" for the embedded catalog.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous Site stays active.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the catalog whenever its file changes on disk, until ctx is
// done. It is a no-op for the embedded catalog. The directory is watched
// rather than the file so editors that replace files on save are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	slog.Info("Watching catalog for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Catalog reload failed, keeping previous content", "path", target, "error", err)
				continue
			}
			slog.Info("Catalog reloaded", "path", target)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Catalog watcher error", "error", err)
		}
	}
}
