//go:build mobile

package utils

// IsMobile is always true in -tags mobile builds.
func IsMobile() bool {
	return true
}
