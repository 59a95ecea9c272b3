//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir creates and probes the settings directory under the app's
// private data dir. gdata uses /data/data/<package>/ on Android but does not
// create subdirectories, so this must run before gdata.Open.
func EnsureStorageDir() error {
	root := GetStoragePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	dir := filepath.Join(root, "settings")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// GetStoragePath returns /data/data/<package>, or "" if the package name
// cannot be read from /proc/self/cmdline.
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}
	// cmdline is NUL separated; the first field is the package name
	name, _, _ := bytes.Cut(data, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(name))
}
