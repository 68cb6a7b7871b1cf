package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/themectl/themectl/internal/fsops"
)

// Entry describes a discovered theme file.
type Entry struct {
	// Name is the theme's file stem, used for apply-by-name.
	Name string

	// Path is the absolute path of the theme file.
	Path string

	// Description is taken from the parsed theme, empty when the file
	// does not parse.
	Description string
}

// Repo provides an interface for theme discovery and name resolution.
type Repo interface {
	// List returns all discoverable themes, sorted by name.
	List() ([]Entry, error)

	// Resolve maps a theme name to its file path. Earlier directories in
	// the search path win on name collisions.
	Resolve(name string) (string, error)
}

// FileRepo implements Repo over one or more theme directories.
type FileRepo struct {
	fs   fsops.FS
	dirs []string
}

// NewFileRepo creates a FileRepo searching the given directories in order.
func NewFileRepo(fs fsops.FS, dirs ...string) *FileRepo {
	return &FileRepo{fs: fs, dirs: dirs}
}

// List returns all discoverable themes, sorted by name. The first directory
// containing a name wins; later duplicates are dropped.
func (r *FileRepo) List() ([]Entry, error) {
	seen := make(map[string]bool)
	var entries []Entry

	for _, dir := range r.dirs {
		files, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read themes directory %s: %w", dir, err)
		}

		for _, f := range files {
			if f.IsDir() {
				continue
			}
			name, ok := themeStem(f.Name())
			if !ok || seen[name] {
				continue
			}
			seen[name] = true

			path := filepath.Join(dir, f.Name())
			entry := Entry{Name: name, Path: path}
			if t, err := Load(path); err == nil {
				entry.Description = t.Description
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Resolve maps a theme name to its file path.
func (r *FileRepo) Resolve(name string) (string, error) {
	if err := r.fs.ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("invalid theme name: %w", err)
	}

	for _, dir := range r.dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			path := filepath.Join(dir, name+ext)
			exists, err := r.fs.Exists(path)
			if err != nil {
				return "", fmt.Errorf("failed to check theme path %s: %w", path, err)
			}
			if exists {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// themeStem returns the file name without its YAML extension, and whether
// the file looks like a theme definition at all.
func themeStem(filename string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)), true
}
