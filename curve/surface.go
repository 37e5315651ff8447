package curve

// A Surface receives path construction commands. Render only needs the
// path subset of a drawing surface; colour and sizing stay with the
// caller.
type Surface interface {
	BeginPath()
	MoveTo(p Point)
	LineTo(p Point)
	CubicTo(c1, c2, p Point)
	Stroke()
}
