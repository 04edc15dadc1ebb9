package core

// Material is the minimal handle a HitRecord needs; the concrete scatter
// contract lives in package material to avoid an import cycle (hittables
// need to carry a material handle, materials don't need to know about
// hittables).
type Material interface{}

// HitRecord carries the result of a ray-hittable intersection.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal to oppose the incoming ray and records
// whether the ray entered the front face, given the geometric outward
// normal (which need not already oppose the ray).
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
