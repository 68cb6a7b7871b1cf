// Package backup captures point-in-time snapshots of the files an apply
// operation is about to mutate, and reconstructs them for restore.
//
// Each apply with backups enabled produces one backup set: a directory
// under the backup root named by a sortable timestamp, holding a copy of
// every pre-existing target file plus a manifest.json indexing them. The
// manifest is written last, after all copies succeed, so its presence is
// the commit point: an interrupted backup never yields a manifest
// referencing missing files.
package backup

import "time"

// ManifestName is the manifest file name inside a backup-set directory.
const ManifestName = "manifest.json"

// Entry records the snapshot of one target file.
type Entry struct {
	// Target is the target kind the file belongs to.
	Target string `json:"target"`

	// Path is the original absolute path of the file.
	Path string `json:"path"`

	// BackupPath is the absolute path of the snapshot copy, or null when
	// the original file did not exist at backup time (nothing to restore).
	BackupPath *string `json:"backupPath"`

	// Checksum is the SHA-256 of the snapshot copy, empty for null
	// backup paths.
	Checksum string `json:"checksum,omitempty"`
}

// Set is one backup set: the snapshot taken before a single apply.
// Immutable after creation.
type Set struct {
	// Name is the backup-set directory base name, derived from the
	// timestamp. Not serialized; reconstructed from the directory.
	Name string `json:"-"`

	// Directory is the absolute path of the backup-set directory.
	Directory string `json:"-"`

	// Timestamp is when the backup was taken.
	Timestamp time.Time `json:"timestamp"`

	// Theme is the name of the theme the apply was for.
	Theme string `json:"theme,omitempty"`

	// Entries records every file considered for backup, in plan order.
	Entries []Entry `json:"entries"`
}

// Restorable returns the entries with a non-null backup path.
func (s *Set) Restorable() []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.BackupPath != nil {
			out = append(out, e)
		}
	}
	return out
}
