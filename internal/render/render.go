// internal/render/render.go
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"lightclock-core/geom"
	"lightclock-core/scene"
)

// Palette chosen to keep the two clocks readable side by side on white.
var (
	colorBackground = [3]float64{1, 1, 1}
	colorGuide      = [3]float64{0.75, 0.75, 0.75}
	colorMirror     = [3]float64{0.15, 0.15, 0.15}
	colorRest       = [3]float64{0.10, 0.35, 0.80} // stationary clock
	colorMoving     = [3]float64{0.82, 0.20, 0.15} // moving clock
	colorText       = [3]float64{0.10, 0.10, 0.10}
)

const (
	marginPx       = 28.0
	mirrorStrokePx = 4.0
	trailStrokePx  = 1.5
	photonRadiusPx = 5.0
)

// Renderer rasterizes frames onto a fixed-size canvas. The viewport is
// computed once from the model and timing so the camera never moves
// mid-run, even though the moving clock drifts across the scene.
type Renderer struct {
	w, h int
	vp   Viewport

	restCaption   string
	movingCaption string
}

// New sizes the viewport to cover both clocks for the whole run: from the
// leftmost mirror edge at t=0 to the moving clock's final position, with a
// band above and below the mirrors for captions.
func New(w, h int, sc *scene.Scene) *Renderer {
	cfg := sc.Model().Config()
	halfW := cfg.MirrorWidth / 2
	tEnd := sc.Timing().TimeAt(sc.FrameCount() - 1)

	xmin := math.Min(cfg.RestX, cfg.MovingX0) - halfW
	xmax := math.Max(cfg.RestX, sc.Model().MirrorX(tEnd)) + halfW
	ymin := -0.35 * cfg.MirrorGap
	ymax := 1.25 * cfg.MirrorGap

	return &Renderer{
		w:             w,
		h:             h,
		vp:            FitViewport(w, h, xmin, xmax, ymin, ymax, marginPx),
		restCaption:   "stationary clock",
		// basicfont covers ASCII only, so spell the symbols out.
		movingCaption: fmt.Sprintf("moving clock  v/c=%.2f  gamma=%.3g", cfg.Beta, sc.Model().Gamma()),
	}
}

// Draw rasterizes one frame. Pure function of the frame and the fixed
// renderer state; calling it twice yields identical pixels.
func (r *Renderer) Draw(f scene.Frame) image.Image {
	dc := gg.NewContext(r.w, r.h)
	setRGB(dc, colorBackground)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	r.drawGuides(dc, f)
	r.drawTrail(dc, f.RestTrail, colorRest)
	r.drawTrail(dc, f.MovingTrail, colorMoving)
	r.drawMirrors(dc, f)
	r.drawPhoton(dc, f.RestPhoton, colorRest)
	r.drawPhoton(dc, f.MovingPhoton, colorMoving)
	r.drawLabels(dc, f)

	return dc.Image()
}

// drawGuides draws the dashed baselines the mirrors slide along.
func (r *Renderer) drawGuides(dc *gg.Context, f scene.Frame) {
	setRGB(dc, colorGuide)
	dc.SetLineWidth(1)
	dc.SetDash(4, 4)
	for _, y := range []float64{0, f.MirrorGap} {
		_, py := r.vp.ToPixel(geom.Point{Y: y})
		dc.DrawLine(0, py, float64(r.w), py)
		dc.Stroke()
	}
	dc.SetDash()
}

func (r *Renderer) drawMirrors(dc *gg.Context, f scene.Frame) {
	setRGB(dc, colorMirror)
	dc.SetLineWidth(mirrorStrokePx)
	for _, s := range []geom.Segment{f.RestBottom, f.RestTop, f.MovingBottom, f.MovingTop} {
		x1, y1 := r.vp.ToPixel(geom.Point{X: s.X1, Y: s.Y1})
		x2, y2 := r.vp.ToPixel(geom.Point{X: s.X2, Y: s.Y2})
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

func (r *Renderer) drawTrail(dc *gg.Context, trail []geom.Point, col [3]float64) {
	if len(trail) < 2 {
		return
	}
	setRGB(dc, col)
	dc.SetLineWidth(trailStrokePx)
	x, y := r.vp.ToPixel(trail[0])
	dc.MoveTo(x, y)
	for _, p := range trail[1:] {
		x, y = r.vp.ToPixel(p)
		dc.LineTo(x, y)
	}
	dc.Stroke()
}

func (r *Renderer) drawPhoton(dc *gg.Context, p geom.Point, col [3]float64) {
	setRGB(dc, col)
	x, y := r.vp.ToPixel(p)
	dc.DrawCircle(x, y, photonRadiusPx)
	dc.Fill()
}

func (r *Renderer) drawLabels(dc *gg.Context, f scene.Frame) {
	setRGB(dc, colorText)
	dc.DrawString(f.Label, 10, 18)

	// Per-clock captions under the bottom mirrors.
	capY := -0.22 * f.MirrorGap
	rx, ry := r.vp.ToPixel(geom.Point{X: f.RestBottom.X1, Y: capY})
	dc.DrawString(r.restCaption, rx, ry)
	mx, my := r.vp.ToPixel(geom.Point{X: f.MovingBottom.X1, Y: capY})
	dc.DrawString(r.movingCaption, mx, my)
}

func setRGB(dc *gg.Context, c [3]float64) { dc.SetRGB(c[0], c[1], c[2]) }
