package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/themectl/themectl/internal/backup"
	"github.com/themectl/themectl/internal/clock"
	"github.com/themectl/themectl/internal/config"
	"github.com/themectl/themectl/internal/engine"
	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/hash"
	"github.com/themectl/themectl/internal/sysprops"
	"github.com/themectl/themectl/internal/theme"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	fs := fsops.NewRealFS()
	hasher := hash.NewSHA256Hasher()
	clk := &clock.RealClock{}
	props := sysprops.NewExecProps()

	themeDirs := append([]string{paths.Themes}, config.ThemeSearchPath()...)
	themes := theme.NewFileRepo(fs, themeDirs...)
	backups := backup.NewStore(fs, hasher, paths.Backups)

	return engine.New(themes, backups, fs, props, clk, *paths), nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
