package lsd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/lsd/internal/platform"
	"github.com/aretw0/lsd/pkg/core"
)

// --- Types ---

// Mode selects where MutateJournal puts new content.
type Mode = core.Mode

const (
	Append  = core.Append
	Prepend = core.Prepend
)

// --- Configuration ---

// Option defines a functional option for configuring lsd.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithReadOnly makes every write fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithCreateDirs creates missing parent directories before writing.
func WithCreateDirs(enabled bool) Option {
	return platform.WithCreateDirs(enabled)
}

// WithRemoveEmptyBullets makes TidyUpPage also drop lines holding a lone dash.
func WithRemoveEmptyBullets(enabled bool) Option {
	return platform.WithRemoveEmptyBullets(enabled)
}

// WithFileMode sets the permissions of files the store creates.
func WithFileMode(mode os.FileMode) Option {
	return platform.WithFileMode(mode)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a Service for the graph at root.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// FindRoot looks upwards from dir for a graph root.
func FindRoot(dir string) (string, error) {
	return platform.FindRoot(dir)
}

// --- Operations ---

// CollapseListSpacing collapses runs of spaces on list lines.
func CollapseListSpacing(text string) string {
	return core.CollapseListSpacing(text)
}

// StripTagBrackets rewrites #[[tag]] as #tag when the tag has no whitespace.
func StripTagBrackets(text string) string {
	return core.StripTagBrackets(text)
}

// ResolveJournalPath returns <root>/journals/YYYY_MM_DD.md for date, or for
// today when date is nil.
func ResolveJournalPath(root string, date *time.Time) string {
	return core.NewJournal(root, date).Path()
}

// MutateJournal appends or prepends content to the journal of date (today
// when nil). Empty content is a no-op.
func MutateJournal(ctx context.Context, root string, date *time.Time, content string, mode Mode, opts ...Option) error {
	if content == "" {
		return nil
	}
	svc, err := New(root, opts...)
	if err != nil {
		return err
	}
	return svc.MutateJournal(ctx, core.NewJournal(root, date), content, mode)
}

// TidyUpPage fixes the page at path and reports whether it was rewritten.
func TidyUpPage(ctx context.Context, path string, opts ...Option) (bool, error) {
	svc, err := New("", opts...)
	if err != nil {
		return false, err
	}
	return svc.TidyUpPage(ctx, core.NewPage(path))
}
