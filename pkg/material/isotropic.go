package material

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/texture"
)

// Isotropic is the phase function for a homogeneous participating medium:
// it scatters uniformly in any direction from the sampled interior point.
type Isotropic struct {
	base
	Albedo texture.Texture
}

// NewIsotropic builds an isotropic phase function from a flat albedo color.
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewIsotropicTexture builds an isotropic phase function from an arbitrary
// albedo texture.
func NewIsotropicTexture(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scattered := core.NewRayAtTime(hit.Point, core.RandomUnitVector(random), rayIn.Time)
	attenuation := i.Albedo.Value(hit.U, hit.V, hit.Point)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}
