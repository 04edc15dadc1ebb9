package material

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// Metal is a specular reflector perturbed by a fuzz radius. Unlike a
// physically tight mirror, fuzzed reflections that end up below the
// surface are not culled; they're tolerated as a minor artifact rather
// than treated as absorption.
type Metal struct {
	base
	Albedo core.Color
	Fuzz   float64
}

// NewMetal builds a metal material; fuzz is clamped to [0,1].
func NewMetal(albedo core.Color, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	reflected = reflected.Normalize().Add(core.RandomUnitVector(random).Multiply(m.Fuzz))

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)
	return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
}
