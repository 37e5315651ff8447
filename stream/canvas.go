package stream

import (
	"encoding/binary"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/curvetx/curve"
)

// Op identifies a recorded drawing command.
type Op byte

// Drawing command opcodes, as transmitted to the display client.
const (
	OpClear Op = iota + 1
	OpStrokeColour
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpCubicTo
	OpStroke
)

// A Command is one recorded drawing operation. Points holds the command's
// coordinates (one point for MoveTo/LineTo, two control points and an end
// point for CubicTo); Colour is set for OpStrokeColour only.
type Command struct {
	Op     Op
	Points []curve.Point
	Colour colorful.Color
}

// A Canvas is a Surface that records drawing commands so a frame can be
// transmitted to a display client for rasterisation. A frame is always a
// full redraw, so Clear discards everything recorded before it.
type Canvas struct {
	width    float64
	height   float64
	commands []Command
}

// NewCanvas creates a Canvas with fixed pixel dimensions.
func NewCanvas(width, height float64) *Canvas {
	c := new(Canvas)
	c.width = width
	c.height = height
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() float64 {
	return c.height
}

// Clear discards the recorded frame and starts the next one.
func (c *Canvas) Clear() {
	c.commands = c.commands[:0]
	c.commands = append(c.commands, Command{Op: OpClear})
}

// SetStrokeColour sets the colour used by subsequent Stroke commands.
func (c *Canvas) SetStrokeColour(col colorful.Color) {
	c.commands = append(c.commands, Command{Op: OpStrokeColour, Colour: col})
}

// BeginPath starts a new path.
func (c *Canvas) BeginPath() {
	c.commands = append(c.commands, Command{Op: OpBeginPath})
}

// MoveTo sets the current path position.
func (c *Canvas) MoveTo(p curve.Point) {
	c.commands = append(c.commands, Command{Op: OpMoveTo, Points: []curve.Point{p}})
}

// LineTo appends a straight segment to the current path.
func (c *Canvas) LineTo(p curve.Point) {
	c.commands = append(c.commands, Command{Op: OpLineTo, Points: []curve.Point{p}})
}

// CubicTo appends a cubic Bézier segment to the current path.
func (c *Canvas) CubicTo(c1, c2, p curve.Point) {
	c.commands = append(c.commands, Command{Op: OpCubicTo, Points: []curve.Point{c1, c2, p}})
}

// Stroke strokes the current path with the current stroke colour.
func (c *Canvas) Stroke() {
	c.commands = append(c.commands, Command{Op: OpStroke})
}

// Commands returns the commands recorded since the last Clear.
func (c *Canvas) Commands() []Command {
	return c.commands
}

// MarshalBinary converts the recorded frame into binary data: a
// little-endian header of width, height and command count, then one
// opcode byte per command followed by its payload (RGB bytes for colours,
// float32 pairs for coordinates).
func (c *Canvas) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 6, 6+len(c.commands)*25)
	binary.LittleEndian.PutUint16(data, uint16(c.width))
	binary.LittleEndian.PutUint16(data[2:], uint16(c.height))
	binary.LittleEndian.PutUint16(data[4:], uint16(len(c.commands)))

	for _, cmd := range c.commands {
		data = append(data, byte(cmd.Op))
		if cmd.Op == OpStrokeColour {
			r, g, b := cmd.Colour.Clamped().RGB255()
			data = append(data, r, g, b)
		}
		for _, p := range cmd.Points {
			data = appendFloat32(data, p.X)
			data = appendFloat32(data, p.Y)
		}
	}

	return data, nil
}

func appendFloat32(data []byte, v float64) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	return append(data, buf[:]...)
}
