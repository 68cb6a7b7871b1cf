// Package config manages themectl configuration and filesystem paths.
//
// Configuration includes the locations of themectl data directories, which
// can be customized via environment variables. The default root is
// ~/.themectl/ containing themes/ and backups/. The package also documents
// the default locations of every target file the plan engine can mutate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the filesystem paths used by themectl.
type Paths struct {
	// Root is the base directory for all themectl data (default: ~/.themectl)
	Root string

	// Themes is the directory containing theme definition files
	Themes string

	// Backups is the root directory for backup sets
	Backups string
}

// DefaultPaths returns the default paths for themectl.
// Paths can be overridden with environment variables:
// - THEMECTL_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("THEMECTL_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".themectl")
	}

	return &Paths{
		Root:    root,
		Themes:  filepath.Join(root, "themes"),
		Backups: filepath.Join(root, "backups"),
	}, nil
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Root,
		p.Themes,
		p.Backups,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ThemeSearchPath returns additional theme directories from the
// THEMECTL_THEME_PATH environment variable (list-separator delimited).
// Nonexistent entries are kept; discovery treats them as empty.
func ThemeSearchPath() []string {
	raw := os.Getenv("THEMECTL_THEME_PATH")
	if raw == "" {
		return nil
	}

	var dirs []string
	for _, dir := range filepath.SplitList(raw) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, ExpandPath(dir))
	}
	return dirs
}
