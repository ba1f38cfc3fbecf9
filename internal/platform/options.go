package platform

import (
	"log/slog"
	"os"

	"github.com/aretw0/lsd/pkg/core"
)

// options holds the internal configuration for the lsd service.
type options struct {
	store              core.Store
	logger             *slog.Logger
	readOnly           bool
	createDirs         bool
	removeEmptyBullets bool
	fileMode           os.FileMode
	errorHandler       func(error)
}

// Option defines a functional option for configuring lsd.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter is skipped along with the
// options that only apply to it.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithReadOnly enables read-only mode: every write returns core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithCreateDirs creates a missing journals/ (or page) directory before writing.
// By default a missing parent directory is an error.
func WithCreateDirs(enabled bool) Option {
	return func(o *options) {
		o.createDirs = enabled
	}
}

// WithRemoveEmptyBullets makes tidy-up also drop lines holding a lone dash.
func WithRemoveEmptyBullets(enabled bool) Option {
	return func(o *options) {
		o.removeEmptyBullets = enabled
	}
}

// WithFileMode sets the permissions of files created by the store.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the
// watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
