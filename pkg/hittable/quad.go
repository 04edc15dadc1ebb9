package hittable

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
)

// Quad is a planar, rectangular surface spanned by two edge vectors from a
// corner. Its hit test projects onto the plane, then checks the resulting
// barycentric coordinates against the unit square.
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Material material.Material

	normal core.Vec3
	d      float64
	w      core.Vec3
	bbox   core.AABB
}

// NewQuad builds a quad from a corner and two non-parallel edge vectors.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	d := normal.Dot(corner)
	w := cross.Multiply(1.0 / cross.LengthSquared())

	q := &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        d,
		w:        w,
	}
	q.bbox = quadBoundingBox(corner, u, v)
	return q
}

func quadBoundingBox(corner, u, v core.Vec3) core.AABB {
	opposite := corner.Add(u).Add(v)
	box1 := core.NewAABBFromPoints(corner, opposite)
	box2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))
	return box1.Merge(box2).Pad()
}

func (q *Quad) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if !rayT.Surrounds(t) {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	hitVector := point.Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{T: t, Point: point, Material: q.Material, U: alpha, V: beta}
	rec.SetFaceNormal(ray, q.normal)
	return rec, true
}

func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// NewBox builds an axis-aligned box spanning the two given opposite
// corners as a list of six quads, one per face.
func NewBox(a, b core.Vec3, mat material.Material) *List {
	box := NewList()

	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	box.Add(NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat))  // front
	box.Add(NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat)) // right
	box.Add(NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat)) // back
	box.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat))  // left
	box.Add(NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat)) // top
	box.Add(NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat))  // bottom

	return box
}
