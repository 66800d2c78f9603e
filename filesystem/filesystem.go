// Package filesystem routes every disk access through a swappable afero backend.
//
// The OS filesystem is used by default; tests switch to an in-memory one.
package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Resolve returns path if it names an existing regular file, otherwise the first
// dirs/path (or dirs/base(path)) that does. Absolute paths are never searched.
func Resolve(path string, dirs ...string) (string, error) {
	if ok, _ := backend.Exists(path); ok {
		return checkFile(path)
	}

	if !filepath.IsAbs(path) {
		for _, dir := range dirs {
			candidate := filepath.Join(dir, path)
			if ok, _ := backend.Exists(candidate); ok {
				return checkFile(candidate)
			}
		}
	}

	return "", &fs.PathError{Op: "resolve", Path: path, Err: fs.ErrNotExist}
}

func checkFile(path string) (string, error) {
	isDir, err := backend.IsDir(path)
	if err != nil {
		return "", err
	}
	if isDir {
		return "", &fs.PathError{Op: "resolve", Path: path, Err: errors.New("is a directory")}
	}
	return path, nil
}
