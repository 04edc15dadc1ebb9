package hittable

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
)

// Sphere is a static or moving sphere. A moving sphere's center travels
// linearly from Center1 at shutter time 0 to Center2 at shutter time 1;
// a static sphere sets Center2 equal to Center1.
type Sphere struct {
	Center1, Center2 core.Vec3
	Radius           float64
	Material         material.Material
	moving           bool
	bbox             core.AABB
}

// NewSphere builds a stationary sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center1: center, Center2: center, Radius: radius, Material: mat}
	s.bbox = s.boxAt(0).Merge(s.boxAt(1))
	return s
}

// NewMovingSphere builds a sphere whose center linearly interpolates
// between center1 (time 0) and center2 (time 1) across the shutter.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center1: center1, Center2: center2, Radius: radius, Material: mat, moving: true}
	// The bounding box is the static union of the endpoint boxes; it is
	// not tightened per ray time, trading a looser box for a box that
	// never needs to be recomputed per query.
	s.bbox = s.boxAt(0).Merge(s.boxAt(1))
	return s
}

func (s *Sphere) boxAt(time float64) core.AABB {
	center := s.centerAt(time)
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABBFromPoints(center.Subtract(radius), center.Add(radius))
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.moving {
		return s.Center1
	}
	return s.Center1.Add(s.Center2.Subtract(s.Center1).Multiply(time))
}

func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{T: root, Point: point, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

// sphereUV computes texture coordinates from a point on the unit sphere,
// always filled in regardless of whether the sphere's material uses them.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}
