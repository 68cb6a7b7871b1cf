package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/themectl/themectl/internal/fsops"
)

func writeTheme(t *testing.T, dir, name, description string) string {
	t.Helper()
	path := filepath.Join(dir, name+".yaml")
	content := "name: " + name + "\ndescription: " + description + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestFileRepo_List(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "dark", "a dark theme")
	writeTheme(t, dir, "light", "a light theme")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	repo := NewFileRepo(fsops.NewRealFS(), dir)
	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "dark" || entries[1].Name != "light" {
		t.Errorf("List() order = [%s, %s], want [dark, light]", entries[0].Name, entries[1].Name)
	}
	if entries[0].Description != "a dark theme" {
		t.Errorf("Description = %q, want %q", entries[0].Description, "a dark theme")
	}
}

func TestFileRepo_List_SearchPathPrecedence(t *testing.T) {
	primary := t.TempDir()
	secondary := t.TempDir()
	writeTheme(t, primary, "dark", "primary dark")
	writeTheme(t, secondary, "dark", "secondary dark")
	writeTheme(t, secondary, "extra", "only in secondary")

	repo := NewFileRepo(fsops.NewRealFS(), primary, secondary)
	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("List() returned %d entries, want 2", len(entries))
	}
	if entries[0].Description != "primary dark" {
		t.Errorf("duplicate name resolved to %q, want the primary directory's theme", entries[0].Description)
	}
}

func TestFileRepo_List_MissingDirectory(t *testing.T) {
	repo := NewFileRepo(fsops.NewRealFS(), filepath.Join(t.TempDir(), "nope"))
	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List() returned %d entries for missing directory, want 0", len(entries))
	}
}

func TestFileRepo_Resolve(t *testing.T) {
	dir := t.TempDir()
	want := writeTheme(t, dir, "dark", "d")

	repo := NewFileRepo(fsops.NewRealFS(), dir)
	got, err := repo.Resolve("dark")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestFileRepo_Resolve_YmlExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "light.yml")
	if err := os.WriteFile(path, []byte("name: light\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	repo := NewFileRepo(fsops.NewRealFS(), dir)
	got, err := repo.Resolve("light")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}
}

func TestFileRepo_Resolve_NotFound(t *testing.T) {
	repo := NewFileRepo(fsops.NewRealFS(), t.TempDir())
	_, err := repo.Resolve("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestFileRepo_Resolve_InvalidName(t *testing.T) {
	repo := NewFileRepo(fsops.NewRealFS(), t.TempDir())
	if _, err := repo.Resolve("../escape"); err == nil {
		t.Error("Resolve() accepted a name with path traversal")
	}
}
