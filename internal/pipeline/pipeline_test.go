package pipeline

import (
	"context"
	"errors"
	"testing"

	"lightclock-core/kinematics"
	"lightclock-core/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	m, err := kinematics.New(kinematics.Config{MirrorGap: 1.0, Beta: 0.6, RestX: 1.0, MovingX0: 3.0})
	if err != nil {
		t.Fatalf("kinematics.New: %v", err)
	}
	s, err := scene.New(m, scene.Timing{DT: 0.5, TMax: 2})
	if err != nil {
		t.Fatalf("scene.New: %v", err)
	}
	return s
}

func TestForEachFrame_VisitsAllInOrder(t *testing.T) {
	sc := testScene(t)
	var seen []int
	err := ForEachFrame(context.Background(), sc, func(f scene.Frame) error {
		seen = append(seen, f.Index)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachFrame: %v", err)
	}
	if len(seen) != sc.FrameCount() {
		t.Fatalf("visited %d frames, want %d", len(seen), sc.FrameCount())
	}
	for i, idx := range seen {
		if idx != i {
			t.Fatalf("frame %d visited at position %d", idx, i)
		}
	}
}

func TestForEachFrame_ResetsBeforeRunning(t *testing.T) {
	sc := testScene(t)
	for i := 0; i < 3; i++ {
		sc.Next() // dirty the scene
	}
	err := ForEachFrame(context.Background(), sc, func(f scene.Frame) error {
		if f.Index == 0 && len(f.RestTrail) != 1 {
			return errors.New("stale trail survived the reset")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachFrame: %v", err)
	}
}

func TestForEachFrame_StopsOnVisitError(t *testing.T) {
	sc := testScene(t)
	boom := errors.New("boom")
	calls := 0
	err := ForEachFrame(context.Background(), sc, func(f scene.Frame) error {
		calls++
		if f.Index == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if calls != 3 {
		t.Fatalf("visit called %d times, want 3", calls)
	}
}

func TestForEachFrame_Cancelled(t *testing.T) {
	sc := testScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEachFrame(ctx, sc, func(scene.Frame) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
