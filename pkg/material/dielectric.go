package material

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water. It
// always attenuates by 1.0 and either reflects or refracts, choosing
// between the two by Schlick reflectance against a random threshold.
type Dielectric struct {
	base
	RefractiveIndex float64
}

// NewDielectric builds a dielectric material with the given index of
// refraction (e.g. 1.5 for glass, 1.33 for water).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	refractionRatio := d.RefractiveIndex
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Schlick(cosTheta, refractionRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)
	return ScatterResult{Scattered: scattered, Attenuation: attenuation}, true
}
