// core/geom/polyline.go
package geom

// Polyline is an append-only point sequence backing a photon trail.
// Between resets it only ever grows; nothing is pruned or reordered.
type Polyline struct {
	pts []Point
}

// Append adds p to the end of the line.
func (l *Polyline) Append(p Point) { l.pts = append(l.pts, p) }

// Len reports the number of points.
func (l *Polyline) Len() int { return len(l.pts) }

// Points returns the backing slice. The polyline keeps ownership: callers
// must treat it as read-only, and views become stale after Reset.
func (l *Polyline) Points() []Point { return l.pts }

// Last returns the most recent point, if any.
func (l *Polyline) Last() (Point, bool) {
	if len(l.pts) == 0 {
		return Point{}, false
	}
	return l.pts[len(l.pts)-1], true
}

// Reset empties the line, keeping capacity for the next run.
func (l *Polyline) Reset() { l.pts = l.pts[:0] }
