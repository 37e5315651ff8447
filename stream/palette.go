package stream

import "github.com/lucasb-eyer/go-colorful"

// A Palette maps a position in [0, 1] to a stroke colour.
type Palette interface {
	At(t float64) colorful.Color
}

// A LinearPalette blends between two endpoint colours in RGB space, so a
// curve's colour is fully determined by its index.
type LinearPalette struct {
	Start colorful.Color
	End   colorful.Color
}

// At gets the colour at the specified point on the gradient.
func (p LinearPalette) At(t float64) colorful.Color {
	return p.Start.BlendRgb(p.End, t)
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []struct {
	Hue float64
	Pos float64
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// A HuePalette colours curves from a hue look-up table at fixed
// saturation and luminance.
type HuePalette struct {
	Table      GradientTable
	Saturation float64
	Luminance  float64
}

// At gets the colour at the specified point on the hue table.
func (p HuePalette) At(t float64) colorful.Color {
	return p.Table.GetColor(t, p.Saturation, p.Luminance)
}
