package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks files that exist only while an overwrite is in flight.
// The watcher ignores them.
const TempFilePrefix = ".lsd-tmp-"

// writeFileAtomic replaces filename with data. The bytes land in a sibling
// temp file that is synced and renamed over filename, so readers see the old
// page or the new one and never a torn write. The temp file gets perm before
// any content is written.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filename, err)
	}
	staged := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(staged)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", staged, err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", staged, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", staged, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", staged, err)
	}
	if err = os.Rename(staged, filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}

// appendFileSynced appends data to an existing file and syncs it.
func appendFileSynced(filename string, data []byte) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s for appending: %w", filename, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", filename, err)
	}

	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync %s: %w", filename, err)
	}

	return f.Close()
}
