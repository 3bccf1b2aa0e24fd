package runutil

import (
	"strings"
	"testing"
)

func TestCheckTiming_CleanPair(t *testing.T) {
	if warns := CheckTiming(0.02, 10); len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
}

func TestCheckTiming_NonIntegralRatio(t *testing.T) {
	warns := CheckTiming(0.5, 1.2)
	if len(warns) != 1 || !strings.Contains(warns[0], "not a multiple") {
		t.Fatalf("warnings = %v, want one non-multiple warning", warns)
	}
	if !strings.Contains(warns[0], "t=1") {
		t.Fatalf("warning should name the effective end time: %q", warns[0])
	}
}

func TestCheckTiming_FloatNoise(t *testing.T) {
	// 0.3/0.1 is not exact in floats; must not warn.
	if warns := CheckTiming(0.1, 0.3); len(warns) != 0 {
		t.Fatalf("float noise produced warnings: %v", warns)
	}
}

func TestCheckTiming_HugeFrameCount(t *testing.T) {
	warns := CheckTiming(1e-7, 10)
	found := false
	for _, w := range warns {
		if strings.Contains(w, "frames") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a frame-count warning, got %v", warns)
	}
}

func TestCheckTiming_InvalidPairsSilent(t *testing.T) {
	if warns := CheckTiming(0, 10); warns != nil {
		t.Fatalf("invalid dt should be silent here, got %v", warns)
	}
}
