package pretty

import (
	"fmt"
	"math"
	"strings"

	"lightclock-core/geom"
	"lightclock-core/scene"
)

// Options control the ASCII frame rendering.
type Options struct {
	// Grid size in characters. If <=0, defaults apply.
	Cols int
	Rows int

	// World-x padding beyond the outermost mirror edge.
	Pad float64

	// How many recent trail points to ghost behind each photon.
	TrailLen int

	// Glyphs
	RestGlyph   byte // stationary clock's photon
	MovingGlyph byte // moving clock's photon
	MirrorGlyph byte
	TrailGlyph  byte
}

// DefaultOptions is the look used by the trace binary's --pretty mode.
var DefaultOptions = Options{
	Cols:        64,
	Rows:        9,
	Pad:         0.5,
	TrailLen:    24,
	RestGlyph:   'O',
	MovingGlyph: '*',
	MirrorGlyph: '=',
	TrailGlyph:  '.',
}

const linePrefix = "# "

func (o Options) withDefaults() Options {
	d := DefaultOptions
	if o.Cols <= 0 {
		o.Cols = d.Cols
	}
	if o.Rows < 3 {
		o.Rows = d.Rows
	}
	if o.Pad <= 0 {
		o.Pad = d.Pad
	}
	if o.TrailLen < 0 {
		o.TrailLen = d.TrailLen
	}
	if o.RestGlyph == 0 {
		o.RestGlyph = d.RestGlyph
	}
	if o.MovingGlyph == 0 {
		o.MovingGlyph = d.MovingGlyph
	}
	if o.MirrorGlyph == 0 {
		o.MirrorGlyph = d.MirrorGlyph
	}
	if o.TrailGlyph == 0 {
		o.TrailGlyph = d.TrailGlyph
	}
	return o
}

// RenderFrame draws one frame as a small fixed-width ASCII picture: mirror
// rows top and bottom, photons between them, recent trail points ghosted.
// Every line carries the "# " prefix so blocks interleave with TSV rows
// without confusing column-oriented consumers.
func RenderFrame(f scene.Frame, opt Options) string {
	opt = opt.withDefaults()

	xmin := math.Min(f.RestBottom.X1, f.MovingBottom.X1) - opt.Pad
	xmax := math.Max(f.RestTop.X2, f.MovingTop.X2) + opt.Pad
	gap := f.MirrorGap
	if xmax <= xmin || gap <= 0 {
		return linePrefix + "(pretty not available: degenerate frame geometry)\n\n"
	}

	col := func(x float64) int {
		c := int(math.Round((x - xmin) / (xmax - xmin) * float64(opt.Cols-1)))
		return clamp(c, 0, opt.Cols-1)
	}
	row := func(y float64) int {
		r := opt.Rows - 1 - int(math.Round(y/gap*float64(opt.Rows-1)))
		return clamp(r, 0, opt.Rows-1)
	}

	grid := make([][]byte, opt.Rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", opt.Cols))
	}

	// Trails first so everything else draws over them.
	for _, trail := range [][]geom.Point{f.RestTrail, f.MovingTrail} {
		start := 0
		if opt.TrailLen > 0 && len(trail) > opt.TrailLen {
			start = len(trail) - opt.TrailLen
		}
		for _, p := range trail[start:] {
			grid[row(p.Y)][col(p.X)] = opt.TrailGlyph
		}
	}

	// Mirror rows.
	for _, seg := range []struct {
		x1, x2 float64
		r      int
	}{
		{f.RestTop.X1, f.RestTop.X2, 0},
		{f.MovingTop.X1, f.MovingTop.X2, 0},
		{f.RestBottom.X1, f.RestBottom.X2, opt.Rows - 1},
		{f.MovingBottom.X1, f.MovingBottom.X2, opt.Rows - 1},
	} {
		for c := col(seg.x1); c <= col(seg.x2); c++ {
			grid[seg.r][c] = opt.MirrorGlyph
		}
	}

	// Photons last; the moving one wins a shared cell.
	grid[row(f.RestPhoton.Y)][col(f.RestPhoton.X)] = opt.RestGlyph
	grid[row(f.MovingPhoton.Y)][col(f.MovingPhoton.X)] = opt.MovingGlyph

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", linePrefix, f.Label)
	for _, line := range grid {
		b.WriteString(linePrefix)
		b.Write(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
