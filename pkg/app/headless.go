package app

import (
	"context"
	"fmt"
	"time"
)

// Updater is anything advanced one frame at a time.
type Updater interface {
	Update(dt time.Duration)
}

// RunHeadless drives u for frames updates of dt each, without a window.
// frames <= 0 runs until ctx is done. It returns the number of frames run;
// the error is ctx.Err() when stopped early by the context.
func RunHeadless(ctx context.Context, u Updater, frames int, dt time.Duration) (int, error) {
	if dt <= 0 {
		return 0, fmt.Errorf("frame delta must be positive, got %v", dt)
	}

	ran := 0
	for frames <= 0 || ran < frames {
		select {
		case <-ctx.Done():
			return ran, ctx.Err()
		default:
		}
		u.Update(dt)
		ran++
	}
	return ran, nil
}

// RunHeadless drives the app's scene without a window. Frames run as fast as
// possible; simulated time advances by dt per frame.
func (a *App) RunHeadless(ctx context.Context, frames int, dt time.Duration) error {
	start := time.Now()
	ran, err := RunHeadless(ctx, a.scene, frames, dt)
	a.logger.Info("headless run finished",
		"frames", ran,
		"simulated", a.scene.Simulated(),
		"fires", a.scene.TotalFires(),
		"counter", a.scene.Countdown().Counter,
		"period", a.scene.Countdown().Period(),
		"wall", time.Since(start).Round(time.Millisecond),
	)
	return err
}
