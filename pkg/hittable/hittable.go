// Package hittable implements the scene primitives a camera ray can
// intersect: spheres, quads, composite boxes, instance transforms,
// participating media, and the bounding-volume hierarchy that accelerates
// intersection against all of them.
package hittable

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// Hittable is anything a ray can intersect within a t-interval. random is
// threaded through every call, rather than stored on constructions that
// need randomness (participating media), so the scene graph stays
// immutable and shareable across concurrent workers, each with its own
// private *rand.Rand.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool)
	BoundingBox() core.AABB
}

// List is an unordered collection of hittables tested exhaustively; it is
// also the staging list the BVH builder consumes.
type List struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewList builds an empty list.
func NewList() *List {
	return &List{}
}

// Add appends an object and grows the list's bounding box to contain it.
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Merge(object.BoundingBox())
}

func (l *List) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), random); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

func (l *List) BoundingBox() core.AABB {
	return l.bbox
}
