package platform

import (
	"os"
	"runtime"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetAppConfigDir(t *testing.T) {
	dir, err := GetAppConfigDir()
	if err != nil {
		t.Fatalf("Failed to get config directory: %v", err)
	}

	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected directory to end with %q, got: %s", AppDirName, dir)
	}
}

func TestGetAppConfigDir_ReportsBothLookups(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("environment-driven lookup is Linux specific")
	}
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")

	_, err := GetAppConfigDir()
	if err == nil {
		t.Fatal("Expected an error without HOME and XDG_CONFIG_HOME")
	}
	if !strings.Contains(err.Error(), "$XDG_CONFIG_HOME") || !strings.Contains(err.Error(), "$HOME is not defined") {
		t.Errorf("Expected both lookup failures in the error, got: %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "slots.json")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file back: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected %q, got %q", "second", string(data))
	}

	// No temp files should be left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}
}

func TestRevealInFileManager_NonExistentFile(t *testing.T) {
	err := RevealInFileManager(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
