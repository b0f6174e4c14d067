// Package store persists encoded notes as files on disk.
//
// Each note is a single file named <id>.note, where id is a UUID assigned
// when the note is created. File contents are the engine's wire encoding;
// the store treats them as opaque bytes. Writes go through a temp file and
// a rename so a crash mid-save never leaves a half-written note behind.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extension is the file extension for stored notes.
const Extension = ".note"

var (
	// ErrNotFound indicates the requested note does not exist.
	ErrNotFound = errors.New("note not found")

	// ErrInvalidID indicates a note id that is not a valid UUID.
	ErrInvalidID = errors.New("invalid note id")
)

// Info describes a stored note.
type Info struct {
	ID      string
	Size    int64
	ModTime time.Time
}

// Store manages note files in a single directory.
type Store struct {
	fs  FS
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(fsys FS, dir string) (*Store, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &Store{fs: fsys, dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// NewID returns a fresh note id.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// path returns the file path for a note id.
func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+Extension)
}

// validateID rejects ids that are not UUIDs, which also keeps path
// separators and dot segments out of file names.
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Load reads the encoded content of a note.
func (s *Store) Load(id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	path := s.path(id)
	if !s.fs.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load note %s: %w", id, err)
	}
	return data, nil
}

// Save writes the encoded content of a note atomically.
func (s *Store) Save(id string, data []byte) error {
	if err := validateID(id); err != nil {
		return err
	}
	tmp := s.path(id) + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save note %s: %w", id, err)
	}
	if err := s.fs.Rename(tmp, s.path(id)); err != nil {
		return fmt.Errorf("save note %s: %w", id, err)
	}
	return nil
}

// Delete removes a note.
func (s *Store) Delete(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	path := s.path(id)
	if !s.fs.Exists(path) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

// Exists reports whether a note with the given id is stored.
func (s *Store) Exists(id string) bool {
	if validateID(id) != nil {
		return false
	}
	return s.fs.Exists(s.path(id))
}

// List returns all stored notes sorted by modification time, newest first.
func (s *Store) List() ([]Info, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var notes []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		id := strings.TrimSuffix(name, Extension)
		if validateID(id) != nil {
			continue
		}
		notes = append(notes, Info{
			ID:      id,
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		})
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ModTime.After(notes[j].ModTime)
	})
	return notes, nil
}
