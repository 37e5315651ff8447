package stream

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/curvetx/curve"
)

// A Surface is a drawing surface the animations render onto: the path
// construction commands consumed by curve.Render plus stroke colour, a
// whole-surface clear and fixed pixel dimensions.
type Surface interface {
	curve.Surface

	SetStrokeColour(c colorful.Color)
	Clear()
	Width() float64
	Height() float64
}
