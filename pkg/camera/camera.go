// Package camera turns a scene graph into pixels: viewport/ray generation,
// the recursive radiance integrator, parallel scanline dispatch, and PPM
// output.
package camera

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/hittable"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
)

// Config collects every user-facing camera parameter; it is copied into a
// Camera's derived, render-ready fields once at construction.
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	VFov            float64
	LookFrom        core.Vec3
	LookAt          core.Vec3
	VUp             core.Vec3
	DefocusAngle    float64
	FocusDist       float64
	Background      core.Color
}

// DefaultConfig matches the book's canonical camera: a 16:9, vfov-20,
// 400-wide view from (13,2,3) toward the origin, defocus 0.6 at a focus
// distance of 10.
func DefaultConfig() Config {
	return Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            20,
		LookFrom:        core.NewVec3(13, 2, 3),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDist:       10,
		Background:      core.NewVec3(0.70, 0.80, 1.00),
	}
}

// Camera holds everything needed to generate rays and integrate radiance
// for a fixed image size once the viewport geometry has been derived.
type Camera struct {
	cfg Config

	imageHeight int

	pixel00Loc   core.Vec3
	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// New derives viewport geometry from cfg once; the returned Camera is
// read-only thereafter and safe to share across goroutines.
func New(cfg Config) *Camera {
	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	theta := core.Radians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDist
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(imageHeight))

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(cfg.ImageWidth))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := cfg.LookFrom.
		Subtract(w.Multiply(cfg.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDist * math.Tan(core.Radians(cfg.DefocusAngle)/2)

	return &Camera{
		cfg:          cfg,
		imageHeight:  imageHeight,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// ImageHeight returns the derived output height.
func (c *Camera) ImageHeight() int { return c.imageHeight }

// ImageWidth returns the configured output width.
func (c *Camera) ImageWidth() int { return c.cfg.ImageWidth }

// GetRay returns a stratified, defocus- and shutter-time-sampled camera ray
// through pixel (i,j).
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetU := random.Float64() - 0.5
	offsetV := random.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetU)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetV))

	origin := c.cfg.LookFrom
	if c.cfg.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(random)
		origin = c.cfg.LookFrom.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	direction := pixelSample.Subtract(origin)
	time := random.Float64()
	return core.NewRayAtTime(origin, direction, time)
}

// RayColor recursively integrates radiance along ray through world, to a
// fixed recursion depth with no Russian roulette termination.
func RayColor(ray core.Ray, depth int, world hittable.Hittable, background core.Color, random *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := world.Hit(ray, core.NewInterval(0.001, math.Inf(1)), random)
	if !ok {
		return background
	}

	mat, _ := rec.Material.(material.Material)

	var emitted core.Color
	if mat != nil {
		emitted = mat.Emit(rec.U, rec.V, rec.Point)
	}

	if mat == nil {
		return emitted
	}

	scatter, ok := mat.Scatter(ray, rec, random)
	if !ok {
		return emitted
	}

	recursive := RayColor(scatter.Scattered, depth-1, world, background, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(recursive))
}
