package material

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/texture"
)

// Lambertian is an ideal diffuse surface: it scatters toward a direction
// drawn from the normal-offset random-unit-vector distribution and
// attenuates by its albedo texture. There is no PDF division here; the
// random-unit-vector scatter direction already matches a cosine-weighted
// distribution closely enough for a fixed-sample-count integrator.
type Lambertian struct {
	base
	Albedo texture.Texture
}

// NewLambertian builds a diffuse material from a flat albedo color.
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolidColor(albedo)}
}

// NewLambertianTexture builds a diffuse material from an arbitrary texture.
func NewLambertianTexture(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random))

	// Catch the degenerate case where the random vector is exactly opposite
	// the normal, which would otherwise produce a zero scatter direction.
	if direction.NearZero() {
		direction = hit.Normal
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	attenuation := l.Albedo.Value(hit.U, hit.V, hit.Point)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}
