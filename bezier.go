package curvekit

// Evaluate computes the point at parameter t on the Bézier curve defined by
// the given control points, using De Casteljau's algorithm: repeatedly
// replace the point sequence with the pairwise interpolations of its
// neighbors until a single point remains.
//
// t is normally in [0, 1]; t=0 yields the first control point and t=1 the
// last. Values outside [0, 1] extrapolate. With a single control point the
// result is that point; with no control points the result is the zero
// Point (callers are expected to guard the empty case).
func Evaluate(pts []Point, t float64) Point {
	switch len(pts) {
	case 0:
		return Point{}
	case 1:
		return pts[0]
	case 2:
		// Common case in the editor before a third click lands.
		return pts[0].Lerp(pts[1], t)
	}

	work := make([]Point, len(pts))
	copy(work, pts)

	for n := len(work); n > 1; n-- {
		for i := 0; i+1 < n; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
	}
	return work[0]
}
