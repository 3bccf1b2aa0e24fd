// core/geom/geom.go
package geom

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two world points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// HSeg returns a horizontal segment of the given width centered on (cx, y).
func HSeg(cx, y, width float64) Segment {
	h := width / 2
	return Segment{X1: cx - h, Y1: y, X2: cx + h, Y2: y}
}
