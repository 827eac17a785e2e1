package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "wallpapers")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Calling again on an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("GetHomeDownloadsDir failed: %v", err)
	}
	if dir == "" {
		t.Error("Expected non-empty downloads directory")
	}
}

func TestOpenFileInManager_MissingFile(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path")
	}

	if err := OpenFileInManager(filepath.Join(t.TempDir(), "does-not-exist.jpg")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestOpenFileWithDefaultApp_MissingFile(t *testing.T) {
	if err := OpenFileWithDefaultApp(""); err == nil {
		t.Error("Expected error for empty path")
	}

	if err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "does-not-exist.jpg")); err == nil {
		t.Error("Expected error for missing file")
	}
}
