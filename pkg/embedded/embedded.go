// Package embedded gives the rest of the program read access to the files
// embedded by the root package.
//
// //go:embed can only reach files under the declaring package, so the
// embed.FS lives in the project root (embed.go) and is handed over here via
// Init before anything is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized is returned by every accessor before Init is called.
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	dataFS      fs.FS
	initialized bool
)

// Init registers the embedded data filesystem. Must run at the start of main.
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized reports whether Init has been called with a filesystem.
func IsInitialized() bool {
	return initialized
}

func normalize(path string) (string, error) {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile reads an embedded file. Paths must start with "data/".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	path, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists reports whether the embedded file exists.
func Exists(path string) bool {
	if !initialized {
		return false
	}
	path, err := normalize(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}
