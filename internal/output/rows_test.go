package output

import (
	"strings"
	"testing"

	"lightclock-core/geom"
	"lightclock-core/kinematics"
	"lightclock-core/scene"
)

func sampleFrame() scene.Frame {
	return scene.Frame{
		Index:        3,
		T:            0.06,
		Label:        "Time = 0.06 s",
		RestPhoton:   geom.Point{X: 1, Y: 0.06},
		MovingPhoton: geom.Point{X: 3.036, Y: 0.048},
		RestPhase:    kinematics.Ascending,
		MovingPhase:  kinematics.Ascending,
		MirrorX:      3.036,
	}
}

func TestFormatRowTSV_ColumnsMatchHeader(t *testing.T) {
	row := FormatRowTSV(sampleFrame())
	nCols := len(strings.Split(TSVHeader, "\t"))
	if got := len(strings.Split(row, "\t")); got != nCols {
		t.Fatalf("row has %d columns, header has %d:\n%s", got, nCols, row)
	}
	if strings.HasSuffix(row, "\n") {
		t.Fatal("row must not carry a trailing newline")
	}
}

func TestFormatRowTSV_Values(t *testing.T) {
	row := FormatRowTSV(sampleFrame())
	want := "3\t0.060000\t1.000000\t0.060000\tascending\t3.036000\t0.048000\tascending\t3.036000"
	if row != want {
		t.Fatalf("row:\n got:  %q\n want: %q", row, want)
	}
}

func TestToAPIFrame(t *testing.T) {
	v := ToAPIFrame(sampleFrame())
	if v.Frame != 3 || v.T != 0.06 || v.Label != "Time = 0.06 s" {
		t.Fatalf("frame fields: %+v", v)
	}
	if v.RestPhase != "ascending" || v.MovingPhase != "ascending" {
		t.Fatalf("phase strings: %+v", v)
	}
	if v.MovingX != v.MirrorX {
		t.Fatalf("moving photon x %g detached from mirror x %g", v.MovingX, v.MirrorX)
	}
}
