//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build:
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.countdown -o build/android/countdown.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Countdown.xcframework ./mobile
//
// Mobile builds run on the built-in defaults; there is no config file on the
// device.
package mobile

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/countdown/pkg/app"
)

func init() {
	logger := app.NewLogger(true, nil)

	gameApp, err := app.NewApp(app.Config{Verbose: true}, logger)
	if err != nil {
		log.Fatal("startup failed", "err", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
