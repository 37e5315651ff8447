package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/curvetx/curve"
)

func testPalette() LinearPalette {
	start, _ := colorful.Hex("#000000")
	end, _ := colorful.Hex("#ffffff")
	return LinearPalette{Start: start, End: end}
}

func TestFanDisplacementAtQuarterPeriods(t *testing.T) {
	fan := NewFan(70, 40, 5000, 0.25, testPalette())

	assert.InDelta(t, 0, fan.Displacement(0), 1e-9)
	assert.InDelta(t, 40, fan.Displacement(1250), 1e-9)
	assert.InDelta(t, 0, fan.Displacement(2500), 1e-9)
	assert.InDelta(t, -40, fan.Displacement(3750), 1e-9)
}

func TestFanDisplacementLoopsPastOnePeriod(t *testing.T) {
	fan := NewFan(70, 40, 5000, 0.25, testPalette())

	// Progress exceeds 1 after a full period; the sway keeps cycling.
	assert.InDelta(t, 40, fan.Displacement(6250), 1e-9)
	assert.InDelta(t, fan.Displacement(1250), fan.Displacement(51250), 1e-6)
}

func TestFanWaypoints(t *testing.T) {
	fan := NewFan(70, 40, 5000, 0.25, testPalette())
	points := fan.Waypoints(800, 600, 3, 40)

	require.Len(t, points, 4)
	assert.Equal(t, curve.Pt(0, 153), points[0])
	assert.InDelta(t, 800.0/3+3+40, points[1].X, 1e-9)
	assert.InDelta(t, 343, points[1].Y, 1e-9)
	assert.InDelta(t, 1600.0/3+3+40, points[2].X, 1e-9)
	assert.InDelta(t, 343, points[2].Y, 1e-9)
	assert.Equal(t, curve.Pt(800, 153), points[3])
}

func TestFanWaypointDisplacementMatchesK(t *testing.T) {
	fan := NewFan(70, 40, 5000, 0.25, testPalette())

	rest := fan.Waypoints(800, 600, 10, 0)
	swung := fan.Waypoints(800, 600, 10, fan.Displacement(1250))

	// Endpoints are fixed; interior waypoints move by exactly k on both
	// axes.
	assert.Equal(t, rest[0], swung[0])
	assert.Equal(t, rest[3], swung[3])
	for _, i := range []int{1, 2} {
		assert.InDelta(t, rest[i].X+40, swung[i].X, 1e-9)
		assert.InDelta(t, rest[i].Y+40, swung[i].Y, 1e-9)
	}
}

func TestFanDrawFrameStrokesEveryCurve(t *testing.T) {
	canvas := NewCanvas(800, 600)
	fan := NewFan(3, 40, 5000, 0.25, testPalette())

	fan.DrawFrame(canvas, 0)

	// Per curve: colour, begin, move, three cubics, stroke.
	commands := canvas.Commands()
	require.Len(t, commands, 3*7)
	assert.Equal(t, OpStrokeColour, commands[0].Op)
	assert.Equal(t, testPalette().At(0), commands[0].Colour)
	assert.Equal(t, OpBeginPath, commands[1].Op)
	assert.Equal(t, curve.Pt(0, 150), commands[2].Points[0])

	strokes := 0
	for _, command := range commands {
		if command.Op == OpStroke {
			strokes++
		}
	}
	assert.Equal(t, 3, strokes)
}

func TestFanColoursCurvesAlongGradient(t *testing.T) {
	canvas := NewCanvas(800, 600)
	palette := testPalette()
	fan := NewFan(4, 40, 5000, 0.25, palette)

	fan.DrawFrame(canvas, 0)

	var colours []colorful.Color
	for _, command := range canvas.Commands() {
		if command.Op == OpStrokeColour {
			colours = append(colours, command.Colour)
		}
	}
	require.Len(t, colours, 4)
	for i, colour := range colours {
		assert.Equal(t, palette.At(float64(i)/4), colour)
	}
}
