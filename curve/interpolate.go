package curve

// DefaultTension controls how far control points are pulled along the
// local tangent when no explicit tension is given.
const DefaultTension = 0.25

// Render strokes a smooth path through points onto s as a single atomic
// path: one BeginPath, one MoveTo, a cubic segment per remaining
// waypoint, one Stroke. The curve passes through every waypoint; tension
// shapes how tightly it hugs the polyline. A tension of zero or less
// selects DefaultTension.
//
// Fewer than two points draws nothing. Exactly two points draws a
// straight segment.
func Render(s Surface, points []Point, tension float64) {
	if tension <= 0 {
		tension = DefaultTension
	}

	if len(points) < 2 {
		return
	}

	if len(points) == 2 {
		s.BeginPath()
		s.MoveTo(points[0])
		s.LineTo(points[1])
		s.Stroke()
		return
	}

	// Each interior waypoint gets an incoming and an outgoing control
	// point, pulled along the normalized prev-to-next tangent and scaled
	// by the distance to the neighbour on that side.
	n := len(points)
	incoming := make([]Point, n)
	outgoing := make([]Point, n)
	for i := 1; i < n-1; i++ {
		tangent := points[i+1].Sub(points[i-1]).Normalize()
		dp := points[i].Distance(points[i-1])
		dn := points[i].Distance(points[i+1])
		incoming[i] = points[i].Sub(tangent.Scale(dp * tension))
		outgoing[i] = points[i].Add(tangent.Scale(dn * tension))
	}

	// The endpoints have a neighbour on one side only; halving the
	// distance to the facing control point keeps the boundary segments
	// tangent-continuous without a separate derivative estimate.
	outgoing[0] = points[0].Midpoint(incoming[1])
	incoming[n-1] = points[n-1].Midpoint(outgoing[n-2])

	s.BeginPath()
	s.MoveTo(points[0])
	for i := 0; i < n-1; i++ {
		s.CubicTo(outgoing[i], incoming[i+1], points[i+1])
	}
	s.Stroke()
}
