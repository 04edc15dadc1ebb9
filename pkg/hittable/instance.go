package hittable

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// Translate wraps a hittable, offsetting it by a fixed vector. The ray is
// transformed into the wrapped object's local space, hit, then the result
// point is transformed back into world space.
type Translate struct {
	Object Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate builds a translated instance of object.
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset, bbox: object.BoundingBox().Add(offset)}
}

func (t *Translate) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT, random)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// RotateY wraps a hittable, rotating it by a fixed angle (degrees) about
// the Y axis.
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY builds a Y-axis-rotated instance of object.
func NewRotateY(object Hittable, angleDegrees float64) *RotateY {
	radians := core.Radians(angleDegrees)
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	bbox := object.BoundingBox()
	rotated := core.AABB{}
	first := true

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerp(bbox.X, i)
				y := lerp(bbox.Y, j)
				z := lerp(bbox.Z, k)

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z
				corner := core.NewVec3(newX, y, newZ)

				if first {
					rotated = core.NewAABBFromPoints(corner, corner)
					first = false
				} else {
					rotated = rotated.Merge(core.NewAABBFromPoints(corner, corner))
				}
			}
		}
	}

	return &RotateY{Object: object, sinTheta: sinTheta, cosTheta: cosTheta, bbox: rotated}
}

func lerp(interval core.Interval, side int) float64 {
	if side == 0 {
		return interval.Min
	}
	return interval.Max
}

func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	// Transform the ray from world space into the object's local space.
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)
	localRay := core.NewRayAtTime(origin, direction, ray.Time)

	rec, ok := r.Object.Hit(localRay, rayT, random)
	if !ok {
		return core.HitRecord{}, false
	}

	// Transform the hit point and normal back into world space.
	rec.Point = core.NewVec3(
		r.cosTheta*rec.Point.X+r.sinTheta*rec.Point.Z,
		rec.Point.Y,
		-r.sinTheta*rec.Point.X+r.cosTheta*rec.Point.Z,
	)
	rec.Normal = core.NewVec3(
		r.cosTheta*rec.Normal.X+r.sinTheta*rec.Normal.Z,
		rec.Normal.Y,
		-r.sinTheta*rec.Normal.X+r.cosTheta*rec.Normal.Z,
	)

	return rec, true
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
