package engine

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/themectl/themectl/internal/backup"
)

// ListBackups returns all backup sets, newest first.
func (e *Engine) ListBackups() ([]*backup.Set, error) {
	return e.backups.List()
}

// Restore copies a selected backup set back over the live target files.
// Entries with a null backup path are skipped (the file did not exist at
// backup time). Restoring does not snapshot the pre-restore state:
// reverting a restore means choosing an older backup set explicitly.
func (e *Engine) Restore(ctx context.Context, req *RestoreRequest) (*RestoreResult, error) {
	var set *backup.Set
	var err error
	if req.Name != "" {
		set, err = e.backups.ByName(req.Name)
	} else {
		set, err = e.backups.Latest()
	}
	if err != nil {
		return nil, err
	}

	result := &RestoreResult{Set: set, DryRun: req.DryRun}

	for _, entry := range set.Restorable() {
		if req.DryRun {
			result.Restored = append(result.Restored, entry.Path)
			continue
		}

		if err := e.fs.MkdirAll(filepath.Dir(entry.Path), 0755); err != nil {
			return result, fmt.Errorf("failed to create directory for %s: %w", entry.Path, err)
		}
		if err := e.fs.CopyFile(*entry.BackupPath, entry.Path); err != nil {
			return result, fmt.Errorf("failed to restore %s: %w", entry.Path, err)
		}
		result.Restored = append(result.Restored, entry.Path)
	}

	return result, nil
}
