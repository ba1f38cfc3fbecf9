package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/lsd/pkg/core"
)

// DefaultFileMode is used for files the store creates.
const DefaultFileMode os.FileMode = 0644

// Store implements core.Store on the local filesystem.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path   string // Graph root, used by Watch
	Logger *slog.Logger
	// ReadOnly makes every write fail with core.ErrReadOnly.
	ReadOnly bool
	// CreateDirs creates missing parent directories before writing.
	CreateDirs bool
	// FileMode is the permission of newly created files. Zero means DefaultFileMode.
	FileMode os.FileMode
	// ErrorHandler receives errors raised by the watch loop.
	ErrorHandler func(error)
}

// NewStore creates a new filesystem-backed store.
func NewStore(config Config) *Store {
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.FileMode == 0 {
		config.FileMode = DefaultFileMode
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Read returns the content of the file at path.
func (s *Store) Read(ctx context.Context, path string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return string(data), true, nil
}

// Apply performs op on the file at path.
//
// Workflow:
//  1. OpSkip returns without touching the filesystem.
//  2. Refuse writes in read-only mode.
//  3. Create parent directories if configured to.
//  4. Overwrite atomically (temp file + rename, keeping the previous mode)
//     or append with O_APPEND; both are synced before returning.
func (s *Store) Apply(ctx context.Context, path string, op core.FileOp) error {
	if op.Kind == core.OpSkip {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.config.ReadOnly {
		return fmt.Errorf("%s %s: %w", op.Kind, path, core.ErrReadOnly)
	}

	if s.config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}

	switch op.Kind {
	case core.OpOverwrite:
		target, perm, err := s.resolveTarget(path)
		if err != nil {
			return err
		}
		s.config.Logger.Debug("overwriting file", "path", target, "bytes", len(op.Text))
		return writeFileAtomic(target, []byte(op.Text), perm)

	case core.OpAppendWithSeparator:
		s.config.Logger.Debug("appending to file", "path", path, "bytes", len(op.Text))
		return appendFileSynced(path, []byte(core.Separator+op.Text))

	default:
		return fmt.Errorf("unknown file operation %v", op.Kind)
	}
}

// resolveTarget follows symlinks so an atomic rename replaces the linked file
// rather than the link, and returns the mode the new file should get.
func (s *Store) resolveTarget(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return path, s.config.FileMode, nil
	}
	if err != nil {
		return "", 0, err
	}
	if info.IsDir() {
		return "", 0, &iofs.PathError{Op: "write", Path: path, Err: errors.New("is a directory")}
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
