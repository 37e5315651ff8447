package stream

import (
	"math"

	"github.com/matt-g-everett/curvetx/curve"
)

// A Fan is an Animation that draws a family of smooth curves fanned out
// by their index, swaying the interior waypoints in unison on a sine so
// the whole fan appears to breathe. The oscillation is periodic, so the
// motion loops seamlessly however long it runs.
type Fan struct {
	count     int
	amplitude float64
	periodMs  int64
	tension   float64
	palette   Palette
}

// NewFan creates an instance of a Fan object.
func NewFan(count int, amplitude float64, periodMs int64, tension float64, palette Palette) *Fan {
	f := new(Fan)
	f.count = count
	f.amplitude = amplitude
	f.periodMs = periodMs
	f.tension = tension
	f.palette = palette
	return f
}

// Displacement returns the shared waypoint offset for the given runtime:
// a full sine cycle every period, scaled to the configured amplitude.
func (f *Fan) Displacement(runtimeMs int64) float64 {
	progress := float64(runtimeMs) / float64(f.periodMs)
	return math.Sin(progress*2*math.Pi) * f.amplitude
}

// Waypoints builds the 4-point sequence for curve i: fixed endpoints on
// the left and right edges offset by i vertically, and two interior
// points offset by i on both axes and displaced by k on both axes.
func (f *Fan) Waypoints(width, height float64, i int, k float64) []curve.Point {
	fi := float64(i)
	edgeY := height * 0.25
	midY := height * 0.5
	return []curve.Point{
		curve.Pt(0, edgeY+fi),
		curve.Pt(width/3+fi+k, midY+fi+k),
		curve.Pt(2*width/3+fi+k, midY+fi+k),
		curve.Pt(width, edgeY+fi),
	}
}

// DrawFrame draws one frame of the fan onto s.
func (f *Fan) DrawFrame(s Surface, runtimeMs int64) {
	k := f.Displacement(runtimeMs)
	for i := 0; i < f.count; i++ {
		s.SetStrokeColour(f.palette.At(float64(i) / float64(f.count)))
		curve.Render(s, f.Waypoints(s.Width(), s.Height(), i, k), f.tension)
	}
}
