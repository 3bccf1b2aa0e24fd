package visitors

import "lightclock-core/scene"

// PassThrough keeps every frame unchanged.
type PassThrough struct{}

func (PassThrough) Visit(f scene.Frame) (keep bool, out scene.Frame, err error) {
	return true, f, nil
}

// Every downsamples to one frame in N, always keeping frame 0.
// N < 2 keeps everything.
type Every struct{ N int }

func (v Every) Visit(f scene.Frame) (keep bool, out scene.Frame, err error) {
	if v.N < 2 {
		return true, f, nil
	}
	return f.Index%v.N == 0, f, nil
}
