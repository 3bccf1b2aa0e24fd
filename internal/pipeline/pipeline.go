// internal/pipeline/pipeline.go
package pipeline

import (
	"context"

	"lightclock-core/scene"
)

// ForEachFrame resets sc and streams every frame to visit, frame 0 first.
// It stops at the first error (including context cancellation) and returns it.
func ForEachFrame(ctx context.Context, sc *scene.Scene, visit func(scene.Frame) error) error {
	sc.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		f, ok := sc.Next()
		if !ok {
			return nil
		}
		if err := visit(f); err != nil {
			return err
		}
	}
}
