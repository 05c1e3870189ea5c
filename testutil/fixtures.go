package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// jpegHeader is enough of a JPEG for anything that sniffs the first bytes
var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

// CreateImageFile writes a small fake JPEG of at least size bytes to dir/name
func CreateImageFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create image directory: %v", err)
	}
	data := make([]byte, 0, size)
	data = append(data, jpegHeader...)
	for len(data) < size {
		data = append(data, 0x00)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write image fixture: %v", err)
	}
	return path
}

// CreateArchiveFixture lays out an archive root with a few sender folders:
//
//	Alice/1.jpg Alice/2.jpg
//	wxid_123/f3a9c0.png
func CreateArchiveFixture(t *testing.T) string {
	t.Helper()
	root := CreateTempDir(t)
	CreateImageFile(t, filepath.Join(root, "Alice"), "1.jpg", 64)
	CreateImageFile(t, filepath.Join(root, "Alice"), "2.jpg", 64)
	CreateImageFile(t, filepath.Join(root, "wxid_123"), "f3a9c0.png", 32)
	return root
}

// CreateEnvFile writes a .env file into dir and returns its path
func CreateEnvFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	return path
}

// CreateConfigFile writes a config file with the given name into dir
func CreateConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}
