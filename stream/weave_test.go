package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/curvetx/curve"
)

func TestWeaveDrawFrameStrokesEveryRow(t *testing.T) {
	canvas := NewCanvas(800, 600)
	weave := NewWeave(4, 40, 5000, 0.25, testPalette())

	weave.DrawFrame(canvas, 1250)

	// Per row: colour, begin, move, four cubics, stroke.
	commands := canvas.Commands()
	require.Len(t, commands, 4*8)
}

func TestWeaveRowsSpanTheSurface(t *testing.T) {
	canvas := NewCanvas(800, 600)
	weave := NewWeave(4, 40, 5000, 0.25, testPalette())

	weave.DrawFrame(canvas, 0)

	// Each row starts on the left edge at its resting height and the
	// sway only touches the interior waypoints.
	rowGap := 600.0 / 5
	row := 0
	for i, command := range canvas.Commands() {
		if command.Op != OpMoveTo {
			continue
		}
		row++
		assert.Equal(t, curve.Pt(0, rowGap*float64(row)), command.Points[0])

		// The path ends on the right edge at the same height.
		last := canvas.Commands()[i+4]
		require.Equal(t, OpCubicTo, last.Op)
		assert.Equal(t, curve.Pt(800, rowGap*float64(row)), last.Points[2])
	}
	assert.Equal(t, 4, row)
}
