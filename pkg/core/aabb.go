package core

import "math"

// AABB is an axis-aligned bounding box expressed as three intervals.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from per-axis intervals.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints builds the tightest AABB enclosing two corner points.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		Y: NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		Z: NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	}
}

// Axis returns the interval for the given axis index (0=X, 1=Y, 2=Z).
func (box AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return box.X
	case 1:
		return box.Y
	default:
		return box.Z
	}
}

// Pad enforces a minimum extent of 1e-4 per axis by symmetric expansion,
// so zero-thickness quads stay intersectable by the slab test.
func (box AABB) Pad() AABB {
	const minExtent = 1e-4
	x, y, z := box.X, box.Y, box.Z
	if x.Size() < minExtent {
		x = x.Expand(minExtent)
	}
	if y.Size() < minExtent {
		y = y.Expand(minExtent)
	}
	if z.Size() < minExtent {
		z = z.Expand(minExtent)
	}
	return AABB{X: x, Y: y, Z: z}
}

// Hit performs the slab test against a copy of the given ray-t interval;
// the caller's interval is never mutated by a missed test.
func (box AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := box.Axis(axis)
		origin := ray.Origin.Component(axis)
		dir := ray.Direction.Component(axis)

		invD := 1.0 / dir
		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

// Merge returns the componentwise interval union of two boxes.
func (box AABB) Merge(other AABB) AABB {
	return AABB{
		X: box.X.Merge(other.X),
		Y: box.Y.Merge(other.Y),
		Z: box.Z.Merge(other.Z),
	}
}

// Add returns the box translated by offset, shifting every axis by its
// matching offset component.
func (box AABB) Add(offset Vec3) AABB {
	return AABB{
		X: NewInterval(box.X.Min+offset.X, box.X.Max+offset.X),
		Y: NewInterval(box.Y.Min+offset.Y, box.Y.Max+offset.Y),
		Z: NewInterval(box.Z.Min+offset.Z, box.Z.Max+offset.Z),
	}
}

// LongestAxis returns the axis index (0=X, 1=Y, 2=Z) with the largest extent.
func (box AABB) LongestAxis() int {
	sizeX, sizeY, sizeZ := box.X.Size(), box.Y.Size(), box.Z.Size()
	if sizeX > sizeY && sizeX > sizeZ {
		return 0
	}
	if sizeY > sizeZ {
		return 1
	}
	return 2
}
