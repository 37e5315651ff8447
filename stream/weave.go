package stream

import (
	"math"

	"github.com/matt-g-everett/curvetx/curve"
	"github.com/matt-g-everett/curvetx/util"
)

// A Weave is an Animation that ripples a stack of curves across the
// surface, each row swaying out of phase with its neighbours. An eased
// amplitude envelope fades the sway in towards the middle rows and out
// again at the edges.
type Weave struct {
	count     int
	amplitude float64
	periodMs  int64
	tension   float64
	palette   Palette
	envelope  []float64
}

// NewWeave creates an instance of a Weave object.
func NewWeave(count int, amplitude float64, periodMs int64, tension float64, palette Palette) *Weave {
	w := new(Weave)
	w.count = count
	w.amplitude = amplitude
	w.periodMs = periodMs
	w.tension = tension
	w.palette = palette
	w.envelope = util.GenerateLut(count)
	return w
}

// DrawFrame draws one frame of the weave onto s.
func (w *Weave) DrawFrame(s Surface, runtimeMs int64) {
	progress := float64(runtimeMs) / float64(w.periodMs)
	rowGap := s.Height() / float64(w.count+1)

	for i := 0; i < w.count; i++ {
		phase := float64(i) / float64(w.count)
		k := math.Sin((progress+phase)*2*math.Pi) * w.amplitude * w.envelope[i]
		y := rowGap * float64(i+1)

		s.SetStrokeColour(w.palette.At(phase))
		points := []curve.Point{
			curve.Pt(0, y),
			curve.Pt(s.Width()*0.25, y+k),
			curve.Pt(s.Width()*0.5, y-k),
			curve.Pt(s.Width()*0.75, y+k),
			curve.Pt(s.Width(), y),
		}
		curve.Render(s, points, w.tension)
	}
}
