package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/lsd/pkg/core"
)

// GraphDir is the directory Logseq keeps its configuration in.
const GraphDir = "logseq"

// FindRoot looks upwards from startDir for a graph root.
// A root is a directory holding a logseq/ directory, or both journals/ and
// pages/. It returns the absolute path of the root, or core.ErrRootNotFound.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if IsGraph(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s: %w", abs, core.ErrRootNotFound)
}

// IsGraph reports whether dir looks like a graph root.
func IsGraph(dir string) bool {
	if hasDir(dir, GraphDir) {
		return true
	}
	return hasDir(dir, core.JournalsDir) && hasDir(dir, core.PagesDir)
}

func hasDir(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.IsDir()
}
