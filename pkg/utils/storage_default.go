//go:build !android

package utils

// EnsureStorageDir is a no-op outside Android; gdata creates its own
// directories there.
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath is empty outside Android.
func GetStoragePath() string {
	return ""
}
