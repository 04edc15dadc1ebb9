package hittable

import (
	"math/rand"
	"sort"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

// BVH is a bounding-volume hierarchy accelerating intersection against a
// fixed set of hittables. The scene graph is built once and never mutated,
// so the resulting tree can be shared read-only across concurrent workers.
type BVH struct {
	left, right Hittable
	bbox        core.AABB
}

// NewBVH builds a tree over a copy of objects; the caller's slice is left
// untouched. The split axis is chosen uniformly at random at each node
// rather than by a binned heuristic, trading tree quality for a simple,
// allocation-light build.
func NewBVH(objects []Hittable, random *rand.Rand) Hittable {
	src := make([]Hittable, len(objects))
	copy(src, objects)
	return buildBVH(src, random)
}

func buildBVH(objects []Hittable, random *rand.Rand) Hittable {
	switch len(objects) {
	case 1:
		return objects[0]
	case 2:
		return &BVH{left: objects[0], right: objects[1], bbox: objects[0].BoundingBox().Merge(objects[1].BoundingBox())}
	}

	axis := random.Intn(3)
	sort.Slice(objects, func(i, j int) bool {
		return boxCenter(objects[i].BoundingBox(), axis) < boxCenter(objects[j].BoundingBox(), axis)
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid], random)
	right := buildBVH(objects[mid:], random)

	return &BVH{left: left, right: right, bbox: left.BoundingBox().Merge(right.BoundingBox())}
}

func (b *BVH) Hit(ray core.Ray, rayT core.Interval, random *rand.Rand) (core.HitRecord, bool) {
	if !b.bbox.Hit(ray, rayT) {
		return core.HitRecord{}, false
	}

	leftRec, hitLeft := b.left.Hit(ray, rayT, random)
	searchMax := rayT.Max
	if hitLeft {
		searchMax = leftRec.T
	}

	rightRec, hitRight := b.right.Hit(ray, core.NewInterval(rayT.Min, searchMax), random)
	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return core.HitRecord{}, false
}

func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}

func boxCenter(box core.AABB, axis int) float64 {
	interval := box.Axis(axis)
	return (interval.Min + interval.Max) / 2
}
