// Package engine provides the core orchestration for themectl operations.
//
// The engine package acts as the layer between CLI commands and the plan,
// backup, and theme components. It resolves themes, builds plans, runs
// them with a backup taken first, and replays backup sets on restore.
//
// Key components:
//   - Engine: Main orchestrator holding all injected dependencies
//   - Apply: Builds and executes a theme plan (dry-run / normal / skip-backup)
//   - Restore: Copies a selected backup set back over the live targets
//   - ListBackups: Enumerates backup sets newest-first
package engine

import (
	"github.com/themectl/themectl/internal/backup"
	"github.com/themectl/themectl/internal/clock"
	"github.com/themectl/themectl/internal/config"
	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/sysprops"
	"github.com/themectl/themectl/internal/theme"
)

// Engine orchestrates all themectl operations.
// It is the main API surface called by the CLI.
type Engine struct {
	themes  theme.Repo
	backups *backup.Store
	fs      fsops.FS
	props   sysprops.Props
	clock   clock.Clock
	paths   config.Paths
}

// New creates a new Engine with the given dependencies.
func New(
	themes theme.Repo,
	backups *backup.Store,
	fs fsops.FS,
	props sysprops.Props,
	clk clock.Clock,
	paths config.Paths,
) *Engine {
	return &Engine{
		themes:  themes,
		backups: backups,
		fs:      fs,
		props:   props,
		clock:   clk,
		paths:   paths,
	}
}
