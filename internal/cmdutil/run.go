package cmdutil

import (
	"context"

	"lightclock-core/scene"

	"lightclock/internal/pipeline"
)

// RunStream iterates the scene, applies a visitor, and streams results via send.
// It returns the number of kept frames and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	sc *scene.Scene,
	visit func(scene.Frame) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachFrame(ctx, sc, func(f scene.Frame) error {
		keep, out, vErr := visit(f)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
