package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointArithmetic(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
	assert.Equal(t, Pt(2, 4), Pt(1, 2).Scale(2))
	assert.Equal(t, Pt(2, 3), Pt(1, 2).Midpoint(Pt(3, 4)))
}

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	assert.Equal(t, 0.0, Pt(1, 1).Distance(Pt(1, 1)))
}

func TestPointNormalize(t *testing.T) {
	assert.Equal(t, Pt(0.6, 0.8), Pt(3, 4).Normalize())
	assert.Equal(t, Pt(0, -1), Pt(0, -5).Normalize())
}

func TestPointNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Point{}, Point{}.Normalize())
}
