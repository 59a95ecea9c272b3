//go:build !mobile

package utils

import "os"

// MobileEmulateEnv forces IsMobile on desktop builds when set to "1".
const MobileEmulateEnv = "COUNTDOWN_MOBILE_EMULATE"

// IsMobile reports whether the program runs on a touch device. Desktop builds
// return false unless MobileEmulateEnv=1.
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
