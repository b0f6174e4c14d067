package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FS abstracts the file operations the note store needs, allowing an
// in-memory implementation for tests.
type FS interface {
	// ReadFile reads the entire file content.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Rename renames (moves) a file.
	Rename(oldPath, newPath string) error

	// Remove removes a file.
	Remove(path string) error

	// ReadDir reads a directory and returns its entries.
	ReadDir(path string) ([]FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm fs.FileMode) error

	// Exists returns true if the path exists.
	Exists(path string) bool
}

// FileInfo describes a stored file.
type FileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

// Name returns the base name.
func (fi FileInfo) Name() string { return fi.name }

// Size returns the file size in bytes.
func (fi FileInfo) Size() int64 { return fi.size }

// ModTime returns the modification time.
func (fi FileInfo) ModTime() time.Time { return fi.modTime }

// OSFS implements FS using the operating system's file system.
type OSFS struct{}

// NewOSFS creates a new OS file system.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Ensure OSFS implements FS.
var _ FS = (*OSFS)(nil)

// ReadFile reads the entire file content.
func (f *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to a file, creating it if necessary.
func (f *OSFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Rename renames (moves) a file.
func (f *OSFS) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Remove removes a file.
func (f *OSFS) Remove(path string) error {
	return os.Remove(path)
}

// ReadDir reads a directory and returns its entries.
func (f *OSFS) ReadDir(path string) ([]FileInfo, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue // Skip entries we can't stat
		}
		if info.IsDir() {
			continue
		}
		infos = append(infos, FileInfo{
			name:    info.Name(),
			size:    info.Size(),
			modTime: info.ModTime(),
		})
	}
	return infos, nil
}

// MkdirAll creates a directory and all parent directories.
func (f *OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Exists returns true if the path exists.
func (f *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	// Return true unless we confirm the file doesn't exist.
	// Permission errors mean we can't determine existence, but the path may exist.
	return !errors.Is(err, os.ErrNotExist)
}

// MemFS implements FS entirely in memory, for tests.
type MemFS struct {
	files map[string][]byte
	times map[string]time.Time
}

// NewMemFS creates an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string][]byte),
		times: make(map[string]time.Time),
	}
}

// Ensure MemFS implements FS.
var _ FS = (*MemFS)(nil)

// ReadFile reads the entire file content.
func (f *MemFS) ReadFile(path string) ([]byte, error) {
	path = filepath.Clean(path)
	data, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile writes data to a file, creating it if necessary.
func (f *MemFS) WriteFile(path string, data []byte, _ fs.FileMode) error {
	path = filepath.Clean(path)
	stored := make([]byte, len(data))
	copy(stored, data)
	f.files[path] = stored
	f.times[path] = time.Now()
	return nil
}

// Rename renames (moves) a file.
func (f *MemFS) Rename(oldPath, newPath string) error {
	oldPath = filepath.Clean(oldPath)
	newPath = filepath.Clean(newPath)
	data, ok := f.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	f.files[newPath] = data
	f.times[newPath] = f.times[oldPath]
	delete(f.files, oldPath)
	delete(f.times, oldPath)
	return nil
}

// Remove removes a file.
func (f *MemFS) Remove(path string) error {
	path = filepath.Clean(path)
	if _, ok := f.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(f.files, path)
	delete(f.times, path)
	return nil
}

// ReadDir reads a directory and returns its entries.
func (f *MemFS) ReadDir(path string) ([]FileInfo, error) {
	path = filepath.Clean(path)
	var infos []FileInfo
	for p, data := range f.files {
		if filepath.Dir(p) != path {
			continue
		}
		infos = append(infos, FileInfo{
			name:    filepath.Base(p),
			size:    int64(len(data)),
			modTime: f.times[p],
		})
	}
	return infos, nil
}

// MkdirAll is a no-op; MemFS has no directory objects.
func (f *MemFS) MkdirAll(string, fs.FileMode) error {
	return nil
}

// Exists returns true if the path exists.
func (f *MemFS) Exists(path string) bool {
	_, ok := f.files[filepath.Clean(path)]
	return ok
}
