package platform

import (
	"fmt"
	"os"

	"github.com/aretw0/lsd/pkg/adapters/fs"
	"github.com/aretw0/lsd/pkg/core"
)

// New wires a Service on top of the graph at root.
//
//	svc, err := platform.New("~/logseq", platform.WithCreateDirs(true))
func New(root string, opts ...Option) (*core.Service, error) {
	o := applyOptions(opts)

	store, err := initStore(root, o)
	if err != nil {
		return nil, err
	}

	return core.NewService(store, core.ServiceConfig{
		Logger:             o.logger,
		RemoveEmptyBullets: o.removeEmptyBullets,
	}), nil
}

// OpenStore returns the store New would use, without the service around it.
func OpenStore(root string, opts ...Option) (core.Store, error) {
	return initStore(root, applyOptions(opts))
}

func initStore(root string, o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	if root != "" {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to open graph %s: %w", root, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("graph %s is not a directory", root)
		}
	}

	if o.logger != nil {
		o.logger.Debug("opening graph", "path", root, "read_only", o.readOnly)
	}

	return fs.NewStore(fs.Config{
		Path:         root,
		Logger:       o.logger,
		ReadOnly:     o.readOnly,
		CreateDirs:   o.createDirs,
		FileMode:     o.fileMode,
		ErrorHandler: o.errorHandler,
	}), nil
}
