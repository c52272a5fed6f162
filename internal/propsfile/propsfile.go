// Package propsfile coordinates reads and writes of a properties file
// shared between processes.
//
// Every Update takes an exclusive lock on a sibling lock file, re-reads
// the file from disk (picking up writes from other processes), applies the
// change and replaces the file atomically, so concurrent writers never lose
// each other's changes.
package propsfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"simpleprops/props"

	"golang.org/x/text/encoding"
)

// File is a properties file on disk and its last loaded contents.
type File struct {
	path       string
	enc        encoding.Encoding
	transforms []props.Transform
	logger     *slog.Logger
	store      *props.Store
}

// Open loads the file at path. If it does not exist the store starts empty
// and the file is created by the first Update. A nil enc means UTF-8.
func Open(path string, enc encoding.Encoding, logger *slog.Logger, transforms ...props.Transform) (*File, error) {
	f := &File{
		path:       path,
		enc:        enc,
		transforms: transforms,
		logger:     logger,
	}
	if err := f.readFromDisk(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Store returns the contents as of the last Open, Reload or Update.
// Changes made to it directly are not persisted.
func (f *File) Store() *props.Store {
	return f.store
}

// Reload re-reads the file from disk.
func (f *File) Reload() error {
	return f.readFromDisk()
}

// Update applies fn to the current on-disk contents under an exclusive
// lock and saves the result. If fn returns an error nothing is written.
func (f *File) Update(fn func(*props.Store) error) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating properties directory: %w", err)
	}

	lock, err := os.OpenFile(f.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("opening properties lock: %w", err)
	}
	defer lock.Close()

	if err := lockFile(lock); err != nil {
		return fmt.Errorf("acquiring properties lock: %w", err)
	}
	defer unlockFile(lock)

	// Re-read from disk to pick up changes from other processes.
	if err := f.readFromDisk(); err != nil {
		return err
	}

	if err := fn(f.store); err != nil {
		// Drop the partial change so Store() matches the file.
		if rerr := f.readFromDisk(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}

	return f.store.SaveFile(f.path, f.enc)
}

// lockPath returns the path to the lock file used for flock-based coordination.
func (f *File) lockPath() string {
	return f.path + ".lock"
}

// readFromDisk replaces f.store with the file's current contents.
func (f *File) readFromDisk() error {
	s := props.New(props.WithTransforms(f.transforms...), props.WithLogger(f.logger))
	if err := s.LoadFile(f.path, f.enc); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	f.store = s
	return nil
}
