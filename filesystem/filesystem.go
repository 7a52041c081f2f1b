// Package filesystem routes every file access of the application through afero,
// so tests can swap the OS filesystem for an in-memory one.
package filesystem

import (
	"os"

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

// SetMemMapFs installs a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// OpenAppend opens path for appending, creating it if needed.
func OpenAppend(path string) (afero.File, error) {
	return backend.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
}
