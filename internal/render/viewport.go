// internal/render/viewport.go
package render

import "lightclock-core/geom"

// Viewport maps world coordinates onto the pixel canvas with a uniform
// scale, y up in the world and down on the canvas.
type Viewport struct {
	scale   float64
	offsetX float64
	offsetY float64 // canvas y of world y=0
}

// FitViewport builds a viewport that shows the world rectangle
// [xmin,xmax]×[ymin,ymax] inside a w×h canvas with the given pixel margin,
// preserving aspect ratio and centering the slack axis.
func FitViewport(w, h int, xmin, xmax, ymin, ymax, margin float64) Viewport {
	innerW := float64(w) - 2*margin
	innerH := float64(h) - 2*margin
	worldW := xmax - xmin
	worldH := ymax - ymin

	scale := innerW / worldW
	if s := innerH / worldH; s < scale {
		scale = s
	}

	// Center the world rect in the canvas.
	padX := (float64(w) - worldW*scale) / 2
	padY := (float64(h) - worldH*scale) / 2
	return Viewport{
		scale:   scale,
		offsetX: padX - xmin*scale,
		offsetY: float64(h) - padY + ymin*scale,
	}
}

// ToPixel maps a world point to canvas coordinates.
func (v Viewport) ToPixel(p geom.Point) (x, y float64) {
	return v.offsetX + p.X*v.scale, v.offsetY - p.Y*v.scale
}

// Scale returns world-to-pixel units.
func (v Viewport) Scale() float64 { return v.scale }
