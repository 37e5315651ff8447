package stream

// An Animation implements a way to draw one frame of a specific
// animation onto a surface.
type Animation interface {
	DrawFrame(s Surface, runtimeMs int64)
}
