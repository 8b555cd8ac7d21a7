package sky

// Point is a plot-space vertex: centered azimuth (x, -180..180) and
// altitude (y). This is the one place in the pipeline that works on
// centered azimuths, because its output goes straight to a line renderer.
type Point struct {
	X float64
	Y float64
}

// WrapPolyline splits a polyline wherever consecutive points jump across
// the ±180° azimuth seam, interpolating a vertex on each edge of the seam
// so no drawn segment spans more than 180° of azimuth. Fewer than two
// points yields no polylines.
func WrapPolyline(points []Point) [][]Point {
	if len(points) < 2 {
		return nil
	}

	var polylines [][]Point
	current := []Point{points[0]}

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		next := points[i]

		delta := next.X - prev.X
		if delta > 180 || delta < -180 {
			// Segment crosses the seam. Interpolate the crossing on
			// the side the previous point exits through.
			// Unwrap the next point onto the previous point's side to
			// get the true (short-way) segment for interpolation.
			exitX := 180.0
			unwrapped := next.X + 360
			if delta > 0 {
				// Jump from near -180 to near +180: exits left.
				exitX = -180
				unwrapped = next.X - 360
			}
			frac := (exitX - prev.X) / (unwrapped - prev.X)
			crossY := prev.Y + frac*(next.Y-prev.Y)

			current = append(current, Point{X: exitX, Y: crossY})
			polylines = append(polylines, current)
			current = []Point{{X: -exitX, Y: crossY}, next}
			continue
		}
		current = append(current, next)
	}

	polylines = append(polylines, current)
	return polylines
}
