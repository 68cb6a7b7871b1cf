package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashFile(t *testing.T) {
	h := NewSHA256Hasher()
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := h.HashFile(path)
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	// SHA-256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("HashFile() = %q, want %q", got, want)
	}
}

func TestSHA256Hasher_HashFile_Missing(t *testing.T) {
	h := NewSHA256Hasher()
	if _, err := h.HashFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("HashFile() on missing file did not return an error")
	}
}

func TestFakeHasher(t *testing.T) {
	h := NewFakeHasher()

	if got, _ := h.HashFile("/any/path"); got != "fakehash" {
		t.Errorf("HashFile() default = %q, want %q", got, "fakehash")
	}

	h.SetHash("/etc/hosts", "abc123")
	if got, _ := h.HashFile("/etc/hosts"); got != "abc123" {
		t.Errorf("HashFile() = %q, want %q", got, "abc123")
	}
}
