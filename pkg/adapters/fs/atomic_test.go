package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Run("Creates New File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "2025_01_01.md")
		content := []byte("- hello atomic")

		if err := writeFileAtomic(filename, content, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("Expected content %q, got %q", content, got)
		}
	})

	t.Run("Overwrites Existing File", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "page.md")

		if err := os.WriteFile(filename, []byte("#[[initial]]"), 0644); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}

		newContent := []byte("#initial")
		if err := writeFileAtomic(filename, newContent, 0644); err != nil {
			t.Fatalf("writeFileAtomic failed: %v", err)
		}

		got, err := os.ReadFile(filename)
		if err != nil {
			t.Fatalf("Failed to read file: %v", err)
		}
		if string(got) != string(newContent) {
			t.Errorf("Expected content %q, got %q", newContent, got)
		}
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := writeFileAtomic(filepath.Join(tmpDir, "a.md"), []byte("a"), 0644); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(tmpDir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Applies Mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permissions are not enforced on Windows")
		}
		filename := filepath.Join(t.TempDir(), "private.md")
		if err := writeFileAtomic(filename, []byte("- secret"), 0600); err != nil {
			t.Fatal(err)
		}
		info, err := os.Stat(filename)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
		}
	})

	t.Run("Cleans Up When Rename Fails", func(t *testing.T) {
		tmpDir := t.TempDir()
		// Renaming a file over a non-empty directory fails.
		target := filepath.Join(tmpDir, "page.md")
		if err := os.MkdirAll(filepath.Join(target, "child"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := writeFileAtomic(target, []byte("x"), 0644); err == nil {
			t.Fatal("Expected error when the target is a directory")
		}

		entries, _ := os.ReadDir(tmpDir)
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), TempFilePrefix) {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("Fails if Directory Missing", func(t *testing.T) {
		tmpDir := t.TempDir()
		filename := filepath.Join(tmpDir, "journals", "2025_01_01.md")

		err := writeFileAtomic(filename, []byte("fail"), 0644)
		if err == nil {
			t.Error("Expected error when directory is missing, got nil")
		}
	})
}

func TestAppendFileSynced(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "journal.md")

	if err := appendFileSynced(filename, []byte("x")); err == nil {
		t.Error("Expected error when appending to a missing file")
	}

	if err := os.WriteFile(filename, []byte("- old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := appendFileSynced(filename, []byte("\nnew")); err != nil {
		t.Fatalf("appendFileSynced failed: %v", err)
	}

	got, _ := os.ReadFile(filename)
	if string(got) != "- old\nnew" {
		t.Errorf("Expected %q, got %q", "- old\nnew", got)
	}
}
