// Package material implements the surface and volume scattering behaviors
// sampled by the renderer: diffuse, metal, dielectric, emissive, and the
// isotropic phase function used by participating media.
package material

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// ScatterResult carries the outcome of a successful scatter: the new ray to
// continue tracing along and the attenuation to apply to the accumulated
// color along that ray.
type ScatterResult struct {
	Scattered   core.Ray
	Attenuation core.Color
}

// Material is the scattering contract every surface and volume implements.
// Scatter returns false when the ray is absorbed (or when the material only
// emits, like DiffuseLight). Emit returns the radiance a material emits at
// a hit point; non-emissive materials return black.
type Material interface {
	Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool)
	Emit(u, v float64, p core.Vec3) core.Color
}

// base embeds a no-op Emit so materials without emission only need to
// implement Scatter.
type base struct{}

func (base) Emit(u, v float64, p core.Vec3) core.Color { return core.Vec3{} }
