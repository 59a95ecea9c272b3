// validate_config checks countdown config files.
//
// Usage:
//
//	go run ./cmd/validate_config [file.yaml ...]
//
// With no arguments it validates data/countdown.yaml. Exit status is 1 if
// any file is invalid.
package main

import (
	"fmt"
	"os"

	"github.com/decker502/countdown/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.EmbeddedConfigPath}
	}

	failed := 0
	for _, path := range paths {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("OK   %s: period=%v speedUpEvery=%d resetAbove=%d tween=%v/%s %s->%s\n",
			path,
			cfg.Countdown.Period,
			cfg.Countdown.SpeedUpEvery,
			cfg.Countdown.ResetAbove,
			cfg.Tween.Duration,
			cfg.Tween.Ease,
			cfg.Tween.FromColor.Hex(),
			cfg.Tween.ToColor.Hex(),
		)
	}

	if failed > 0 {
		fmt.Printf("%d of %d file(s) invalid\n", failed, len(paths))
		os.Exit(1)
	}
}
