package scene

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"lightclock-core/kinematics"
)

func newScene(t *testing.T, tm Timing) *Scene {
	t.Helper()
	m, err := kinematics.New(kinematics.Config{MirrorGap: 1.0, Beta: 0.6, RestX: 1.0, MovingX0: 3.0})
	if err != nil {
		t.Fatalf("kinematics.New: %v", err)
	}
	s, err := New(m, tm)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestTiming_Validate(t *testing.T) {
	cases := []struct {
		name string
		tm   Timing
		want string
	}{
		{"zero dt", Timing{DT: 0, TMax: 1}, "frame step"},
		{"negative dt", Timing{DT: -0.02, TMax: 1}, "frame step"},
		{"nan dt", Timing{DT: math.NaN(), TMax: 1}, "frame step"},
		{"negative tmax", Timing{DT: 0.02, TMax: -1}, "t-max"},
		{"inf tmax", Timing{DT: 0.02, TMax: math.Inf(1)}, "t-max"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.tm.Validate()
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("Validate(%+v) = %v, want error mentioning %q", c.tm, err, c.want)
			}
		})
	}
	if err := (Timing{DT: 0.02, TMax: 10}).Validate(); err != nil {
		t.Fatalf("valid timing rejected: %v", err)
	}
}

func TestTiming_FrameCount(t *testing.T) {
	cases := []struct {
		dt, tmax float64
		want     int
	}{
		{0.02, 10, 501}, // default run; exact multiple must not lose the last frame
		{0.02, 0, 1},    // a zero-length run still has frame 0
		{0.5, 1.2, 3},   // non-integral ratio truncates
		{0.1, 0.3, 4},   // 0.3/0.1 is 2.9999... in floats; epsilon keeps 4 frames
	}
	for _, c := range cases {
		if got := (Timing{DT: c.dt, TMax: c.tmax}).FrameCount(); got != c.want {
			t.Fatalf("FrameCount(dt=%g, tmax=%g) = %d, want %d", c.dt, c.tmax, got, c.want)
		}
	}
}

func TestScene_SequentialFrames(t *testing.T) {
	s := newScene(t, Timing{DT: 0.5, TMax: 2})

	lastT := -1.0
	n := 0
	for {
		f, ok := s.Next()
		if !ok {
			break
		}
		if f.Index != n {
			t.Fatalf("frame index %d, want %d", f.Index, n)
		}
		if f.T <= lastT {
			t.Fatalf("time not increasing: %g after %g", f.T, lastT)
		}
		lastT = f.T
		n++

		// Trails grow by exactly one point per frame.
		if len(f.RestTrail) != n || len(f.MovingTrail) != n {
			t.Fatalf("frame %d: trail lengths %d/%d, want %d", f.Index, len(f.RestTrail), len(f.MovingTrail), n)
		}
		// The newest trail point is the current photon position.
		if f.RestTrail[n-1] != f.RestPhoton || f.MovingTrail[n-1] != f.MovingPhoton {
			t.Fatalf("frame %d: trail tip disagrees with photon marker", f.Index)
		}
		// Photon rides with the mirrors.
		if f.MovingPhoton.X != f.MirrorX {
			t.Fatalf("frame %d: moving photon x=%g, mirror x=%g", f.Index, f.MovingPhoton.X, f.MirrorX)
		}
	}
	if n != s.FrameCount() {
		t.Fatalf("produced %d frames, want %d", n, s.FrameCount())
	}

	// Exhausted scene stays exhausted.
	if _, ok := s.Next(); ok {
		t.Fatal("Next after completion produced a frame")
	}
}

func TestScene_Label(t *testing.T) {
	s := newScene(t, Timing{DT: 0.25, TMax: 1})
	s.Next()
	f, ok := s.Next()
	if !ok {
		t.Fatal("expected frame 1")
	}
	if f.Label != "Time = 0.25 s" {
		t.Fatalf("label = %q", f.Label)
	}
}

func TestScene_ResetReplaysIdentically(t *testing.T) {
	s := newScene(t, Timing{DT: 0.1, TMax: 1})

	run := func() []Frame {
		var out []Frame
		for {
			f, ok := s.Next()
			if !ok {
				return out
			}
			// Copy the trail tips only; the slices are views that Reset invalidates.
			f.RestTrail, f.MovingTrail = nil, nil
			out = append(out, f)
		}
	}

	first := run()
	s.Reset()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("replay produced %d frames, want %d", len(second), len(first))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Fatalf("frame %d differs after Reset:\n first: %+v\nsecond: %+v", i, first[i], second[i])
		}
	}
}

func TestScene_MidRunReset(t *testing.T) {
	s := newScene(t, Timing{DT: 0.1, TMax: 1})
	for i := 0; i < 4; i++ {
		s.Next()
	}
	s.Reset()
	f, ok := s.Next()
	if !ok || f.Index != 0 || f.T != 0 {
		t.Fatalf("after Reset got frame %+v, want frame 0 at t=0", f)
	}
	if len(f.RestTrail) != 1 || len(f.MovingTrail) != 1 {
		t.Fatalf("trails not cleared by Reset: %d/%d points", len(f.RestTrail), len(f.MovingTrail))
	}
}
