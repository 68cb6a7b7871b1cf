package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/themectl/themectl/internal/fsops"
	"github.com/themectl/themectl/internal/hash"
)

// ErrNotFound indicates no backup set matched the requested selection.
var ErrNotFound = errors.New("backup not found")

// nameFormat makes backup-set directory names sort in timestamp order.
const nameFormat = "20060102-150405"

// PendingFile names one target file an apply operation is about to mutate.
type PendingFile struct {
	Target string
	Path   string
}

// Store manages backup sets under a single backup root directory.
type Store struct {
	fs     fsops.FS
	hasher hash.Hasher
	root   string
}

// NewStore creates a Store rooted at the given directory.
func NewStore(fs fsops.FS, hasher hash.Hasher, root string) *Store {
	return &Store{fs: fs, hasher: hasher, root: root}
}

// Create captures a backup set for the given files at the given timestamp.
// Files that exist are copied into the set directory; files that do not
// exist are recorded with a null backup path. The manifest is written only
// after every copy succeeded.
func (s *Store) Create(themeName string, files []PendingFile, ts time.Time) (*Set, error) {
	name, dir, err := s.allocateDir(ts)
	if err != nil {
		return nil, err
	}

	set := &Set{
		Name:      name,
		Directory: dir,
		Timestamp: ts,
		Theme:     themeName,
		Entries:   []Entry{},
	}

	for _, f := range files {
		entry := Entry{Target: f.Target, Path: f.Path}

		exists, err := s.fs.Exists(f.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", f.Path, err)
		}
		if exists {
			dst := filepath.Join(dir, "files", encodeBackupRel(f.Path))
			if err := s.fs.CopyFile(f.Path, dst); err != nil {
				return nil, fmt.Errorf("failed to back up %s: %w", f.Path, err)
			}
			entry.BackupPath = &dst
			if sum, err := s.hasher.HashFile(dst); err == nil {
				entry.Checksum = sum
			}
		}

		set.Entries = append(set.Entries, entry)
	}

	// Manifest last: its presence commits the backup.
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if err := s.fs.AtomicWrite(filepath.Join(dir, ManifestName), append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return set, nil
}

// allocateDir creates a fresh backup-set directory named from the
// timestamp, adding a disambiguating suffix on collision.
func (s *Store) allocateDir(ts time.Time) (string, string, error) {
	base := ts.Format(nameFormat)

	for i := 0; ; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s-%d", base, i)
		}
		dir := filepath.Join(s.root, name)

		exists, err := s.fs.Exists(dir)
		if err != nil {
			return "", "", fmt.Errorf("failed to check backup directory: %w", err)
		}
		if exists {
			continue
		}

		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return "", "", fmt.Errorf("failed to create backup directory: %w", err)
		}
		return name, dir, nil
	}
}

// List returns all backup sets under the root, newest first. A directory
// whose manifest is missing or fails to parse yields a set with an empty
// entry list rather than aborting the listing.
func (s *Store) List() ([]*Set, error) {
	dirs, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Set{}, nil
		}
		return nil, fmt.Errorf("failed to read backup root: %w", err)
	}

	var sets []*Set
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		sets = append(sets, s.load(d.Name()))
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Name > sets[j].Name })
	return sets, nil
}

// Latest returns the newest backup set.
func (s *Store) Latest() (*Set, error) {
	sets, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no backups exist", ErrNotFound)
	}
	return sets[0], nil
}

// ByName returns the backup set with the exact directory name.
func (s *Store) ByName(name string) (*Set, error) {
	if err := s.fs.ValidateIdentifier(name); err != nil {
		return nil, fmt.Errorf("invalid backup name: %w", err)
	}

	exists, err := s.fs.Exists(filepath.Join(s.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to check backup directory: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return s.load(name), nil
}

// load reconstructs a set from its directory, tolerating a broken manifest.
func (s *Store) load(name string) *Set {
	dir := filepath.Join(s.root, name)
	set := &Set{
		Name:      name,
		Directory: dir,
		Entries:   []Entry{},
	}

	// Best-effort timestamp from the directory name; the suffix added on
	// collision is ignored for parsing.
	stamp := name
	if len(stamp) > len(nameFormat) {
		stamp = stamp[:len(nameFormat)]
	}
	if ts, err := time.Parse(nameFormat, stamp); err == nil {
		set.Timestamp = ts
	}

	data, err := s.fs.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return set
	}

	var parsed Set
	if err := json.Unmarshal(data, &parsed); err != nil {
		return set
	}

	set.Theme = parsed.Theme
	if !parsed.Timestamp.IsZero() {
		set.Timestamp = parsed.Timestamp
	}
	if parsed.Entries != nil {
		set.Entries = parsed.Entries
	}
	return set
}

// encodeBackupRel encodes an absolute path into the relative layout used
// inside a backup-set directory. The volume name (drive letter) becomes
// the first path element so the original path stays unambiguous across
// drives; on Unix the leading slash is simply dropped.
func encodeBackupRel(abs string) string {
	vol := filepath.VolumeName(abs)
	rest := strings.TrimLeft(abs[len(vol):], `/\`)

	if vol == "" {
		return filepath.FromSlash(rest)
	}

	drive := strings.TrimSuffix(vol, ":")
	drive = strings.TrimLeft(drive, `/\`)
	return filepath.Join(drive, rest)
}
