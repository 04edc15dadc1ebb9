package texture

import (
	"math/rand"
	"testing"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestSolidColorIsConstant(t *testing.T) {
	s := NewSolidColorRGB(0.2, 0.4, 0.6)
	got := s.Value(0.9, 0.1, core.NewVec3(100, -100, 5))
	assert.Equal(t, core.NewVec3(0.2, 0.4, 0.6), got)
}

func TestCheckerAlternates(t *testing.T) {
	c := NewCheckerFromColors(1, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))

	white := c.Value(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	black := c.Value(0, 0, core.NewVec3(1.5, 0.5, 0.5))

	assert.Equal(t, core.NewVec3(1, 1, 1), white)
	assert.Equal(t, core.NewVec3(0, 0, 0), black)
}

func TestImageFallsBackToCyanWhenDegenerate(t *testing.T) {
	img := NewImage(&ImageData{Width: 0, Height: 0, Pixels: nil})
	got := img.Value(0.5, 0.5, core.Vec3{})
	assert.Equal(t, core.NewVec3(0, 1, 1), got)
}

func TestImageSamplesNearestTexelWithVFlip(t *testing.T) {
	// a 2x1 image: left texel red, right texel green
	data := &ImageData{
		Width:  2,
		Height: 1,
		Pixels: []byte{255, 0, 0, 0, 255, 0},
	}
	img := NewImage(data)

	left := img.Value(0.0, 0.5, core.Vec3{})
	right := img.Value(0.9, 0.5, core.Vec3{})

	assert.InDelta(t, 255.0/256.0, left.X, 1e-9)
	assert.InDelta(t, 255.0/256.0, right.Y, 1e-9)
}

func TestNoiseValueStaysInGrayscaleRange(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	n := NewNoise(4.0, random)
	for i := 0; i < 100; i++ {
		p := core.NewVec3(float64(i)*0.37, float64(i)*0.11, float64(i)*0.91)
		c := n.Value(0, 0, p)
		assert.GreaterOrEqual(t, c.X, 0.0)
		assert.LessOrEqual(t, c.X, 1.0)
		assert.Equal(t, c.X, c.Y)
		assert.Equal(t, c.Y, c.Z)
	}
}

func TestPerlinNoiseIsBounded(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	p := newPerlin(random)
	for i := 0; i < 200; i++ {
		n := p.Noise(core.NewVec3(float64(i)*0.1, float64(i)*0.2, float64(i)*0.3))
		assert.GreaterOrEqual(t, n, -1.0)
		assert.LessOrEqual(t, n, 1.0)
	}
}

func TestPerlinTurbIsNonNegative(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	p := newPerlin(random)
	for i := 0; i < 50; i++ {
		turb := p.Turb(core.NewVec3(float64(i)*0.5, 0, 0), 7)
		assert.GreaterOrEqual(t, turb, 0.0)
	}
}
