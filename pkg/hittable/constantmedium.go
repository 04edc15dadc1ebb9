package hittable

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
	"github.com/colinmarsh/nextweek-tracer/pkg/texture"
)

// ConstantMedium is a homogeneous isotropic participating volume, such as
// fog or smoke, bounded by an arbitrary convex hittable boundary. Scatter
// distance inside the boundary is sampled from an exponential
// distribution so thicker traversals are more likely to scatter.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density bounded by
// boundary, with a flat albedo color.
func NewConstantMedium(boundary Hittable, density float64, albedo core.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumTexture builds a medium whose albedo is sampled from an
// arbitrary texture.
func NewConstantMediumTexture(boundary Hittable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropicTexture(albedo),
	}
}

func (c *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	rec1, ok := c.Boundary.Hit(ray, core.Universe, random)
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := c.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), random)
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	rec := core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; isotropic scatter ignores it
		FrontFace: true,
		Material:  c.PhaseFunction,
	}
	return rec, true
}

func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}
