//go:build !mobile

// Package mobile only has content in -tags mobile builds.
package mobile

// Dummy keeps the package buildable without the mobile tag.
func Dummy() {}
