// Package texture implements the spatial color sources sampled by
// materials: flat colors, checkerboards, image lookups, and Perlin-noise
// based patterns.
package texture

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// Texture maps a hit's (u,v, world point) to a color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Color
}

// SolidColor always returns the same color regardless of (u,v,p).
type SolidColor struct {
	ColorValue core.Color
}

// NewSolidColor wraps a flat color as a Texture.
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{ColorValue: color}
}

// NewSolidColorRGB is a convenience constructor from raw components.
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{ColorValue: core.NewVec3(r, g, b)}
}

func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Color {
	return s.ColorValue
}

// Checker alternates between two sub-textures in a 3D grid of the given
// cell scale.
type Checker struct {
	invScale float64
	even     Texture
	odd      Texture
}

// NewChecker builds a 3D checker pattern from two sub-textures.
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1.0 / scale, even: even, odd: odd}
}

// NewCheckerFromColors is a convenience constructor using solid colors.
func NewCheckerFromColors(scale float64, c1, c2 core.Color) *Checker {
	return NewChecker(scale, NewSolidColor(c1), NewSolidColor(c2))
}

func (c *Checker) Value(u, v float64, p core.Vec3) core.Color {
	xInt := int(floor(c.invScale * p.X))
	yInt := int(floor(c.invScale * p.Y))
	zInt := int(floor(c.invScale * p.Z))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.even.Value(u, v, p)
	}
	return c.odd.Value(u, v, p)
}

func floor(x float64) float64 {
	return math.Floor(x)
}

// Noise is a marbled texture built from turbulence over Perlin noise.
type Noise struct {
	noise *perlin
	scale float64
}

// NewNoise builds a marbled noise texture at the given spatial scale, seeded
// from random.
func NewNoise(scale float64, random *rand.Rand) *Noise {
	return &Noise{noise: newPerlin(random), scale: scale}
}

func (n *Noise) Value(u, v float64, p core.Vec3) core.Color {
	scaled := p.Multiply(n.scale)
	marble := 1 + math.Sin(scaled.Z+10*n.noise.Turb(scaled, 7))
	return core.NewVec3(1, 1, 1).Multiply(0.5 * marble)
}
