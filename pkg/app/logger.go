package app

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger creates the program logger. verbose lowers the level to debug.
// A nil writer means stderr.
func NewLogger(verbose bool, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "countdown",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
