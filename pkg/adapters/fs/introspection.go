package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path          string `json:"path"`
	ReadOnly      bool   `json:"read_only"`
	CreateDirs    bool   `json:"create_dirs"`
	FileMode      string `json:"file_mode"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Path:          s.Path,
		ReadOnly:      s.config.ReadOnly,
		CreateDirs:    s.config.CreateDirs,
		FileMode:      s.config.FileMode.String(),
		WatcherActive: s.watcherActive,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
