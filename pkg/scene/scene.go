// Package scene builds the nine canonical scene graphs the CLI can
// render, each pairing a Hittable world with the camera configuration it
// was designed to be viewed through.
package scene

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/camera"
	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/hittable"
	"github.com/colinmarsh/nextweek-tracer/pkg/loaders"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
	"github.com/colinmarsh/nextweek-tracer/pkg/texture"
)

// Scene pairs a renderable world with the camera it was designed for.
type Scene struct {
	World  hittable.Hittable
	Camera camera.Config
}

func defaultCamera() camera.Config {
	cfg := camera.DefaultConfig()
	cfg.ImageWidth = 1200
	cfg.SamplesPerPixel = 500
	cfg.MaxDepth = 50
	cfg.VFov = 20
	cfg.LookFrom = core.NewVec3(13, 2, 3)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.DefocusAngle = 0.6
	cfg.Background = core.NewVec3(0.7, 0.8, 1.0)
	return cfg
}

// getRandMaterial reproduces the 80%/95%/100% diffuse/metal/glass split
// used to populate the random-balls field.
func getRandMaterial(chooseMat float64, random *rand.Rand) material.Material {
	switch {
	case chooseMat < 0.8:
		albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
		return material.NewLambertian(albedo)
	case chooseMat < 0.95:
		albedo := core.RandomVec3Range(random, 0.5, 1)
		fuzz := core.RandomRange(random, 0, 0.5)
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}

// RandomBalls is the book's cover scene: a checkered ground plane, a field
// of small randomly-placed and randomly-materialed balls (some with
// vertical motion blur), and three large feature balls.
func RandomBalls(random *rand.Rand) Scene {
	world := hittable.NewList()

	checker := texture.NewCheckerFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertianTexture(checker)))

	const count = 11
	avoid := core.NewVec3(4, 0.2, 0)
	for a := -count; a < count; a++ {
		for b := -count; b < count; b++ {
			center := core.NewVec3(float64(a)+random.Float64(), 0.2, float64(b)+random.Float64())
			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			chooseMat := random.Float64()
			mat := getRandMaterial(chooseMat, random)
			if chooseMat < 0.8 {
				center2 := center.Add(core.NewVec3(0, core.RandomRange(random, 0, 0.5), 0))
				world.Add(hittable.NewMovingSphere(center, center2, 0.2, mat))
			} else {
				world.Add(hittable.NewSphere(center, 0.2, mat))
			}
		}
	}

	world.Add(hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	bvh := hittable.NewBVH(world.Objects, random)

	cfg := defaultCamera()
	return Scene{World: bvh, Camera: cfg}
}

// TwoSpheres stacks a pair of large checkered spheres to show the checker
// texture at scale, seen straight-on with no defocus.
func TwoSpheres() Scene {
	world := hittable.NewList()
	checker := texture.NewCheckerFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewLambertianTexture(checker)

	world.Add(hittable.NewSphere(core.NewVec3(0, -10, 0), 10, ground))
	world.Add(hittable.NewSphere(core.NewVec3(0, 10, 0), 10, ground))

	cfg := defaultCamera()
	cfg.DefocusAngle = 0
	return Scene{World: world, Camera: cfg}
}

// Earth maps an equirectangular photo of Earth onto a single sphere.
func Earth() (Scene, error) {
	data, err := loaders.LoadImage("resources/earthmap.jpg")
	if err != nil {
		return Scene{}, err
	}

	earthSurface := material.NewLambertianTexture(texture.NewImage(data))
	world := hittable.NewList()
	world.Add(hittable.NewSphere(core.NewVec3(0, 0, 0), 2, earthSurface))

	cfg := defaultCamera()
	cfg.ImageWidth = 1200
	cfg.SamplesPerPixel = 500
	cfg.LookFrom = core.NewVec3(15, 5, 13)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.DefocusAngle = 0
	return Scene{World: world, Camera: cfg}, nil
}

// TwoPerlinSpheres shows the marbled Perlin-noise texture on a ground
// plane and a floating sphere, both sharing the same noise field.
func TwoPerlinSpheres(random *rand.Rand) Scene {
	world := hittable.NewList()
	pertext := texture.NewNoise(4.0, random)
	ground := material.NewLambertianTexture(pertext)

	world.Add(hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))
	world.Add(hittable.NewSphere(core.NewVec3(0, 2, 0), 2, ground))

	cfg := defaultCamera()
	cfg.DefocusAngle = 0
	return Scene{World: world, Camera: cfg}
}

// Quads renders five colored quads, one per side of a box seen from
// inside, to exercise the Quad primitive directly.
func Quads() Scene {
	world := hittable.NewList()

	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world.Add(hittable.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed))
	world.Add(hittable.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen))
	world.Add(hittable.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue))
	world.Add(hittable.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange))
	world.Add(hittable.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal))

	cfg := camera.DefaultConfig()
	cfg.ImageWidth = 1200
	cfg.AspectRatio = 1.0
	cfg.SamplesPerPixel = 500
	cfg.MaxDepth = 50
	cfg.VFov = 80
	cfg.LookFrom = core.NewVec3(0, 0, 9)
	cfg.LookAt = core.NewVec3(0, 0, 0)
	cfg.DefocusAngle = 0
	cfg.Background = core.NewVec3(0.7, 0.8, 1.0)
	return Scene{World: world, Camera: cfg}
}

// SimpleLight places a rectangular area light and a spherical light above
// a pair of Perlin-noise spheres against a black background.
func SimpleLight(random *rand.Rand) Scene {
	world := hittable.NewList()
	pertext := texture.NewNoise(4.0, random)
	noiseMat := material.NewLambertianTexture(pertext)

	world.Add(hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, noiseMat))
	world.Add(hittable.NewSphere(core.NewVec3(0, 2, 0), 2, noiseMat))

	diffLight := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world.Add(hittable.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), diffLight))
	world.Add(hittable.NewSphere(core.NewVec3(0, 7, 0), 2, diffLight))

	cfg := defaultCamera()
	cfg.LookFrom = core.NewVec3(26, 3, 6)
	cfg.LookAt = core.NewVec3(0, 2, 0)
	cfg.DefocusAngle = 0
	cfg.Background = core.Vec3{}
	return Scene{World: world, Camera: cfg}
}

func cornellMaterials() (red, white, green, light material.Material) {
	red = material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white = material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green = material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light = material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	return
}

func cornellCamera() camera.Config {
	cfg := camera.DefaultConfig()
	cfg.ImageWidth = 1200
	cfg.AspectRatio = 1.0
	cfg.SamplesPerPixel = 500
	cfg.MaxDepth = 50
	cfg.VFov = 40
	cfg.LookFrom = core.NewVec3(278, 278, -800)
	cfg.LookAt = core.NewVec3(278, 278, 0)
	cfg.DefocusAngle = 0
	cfg.Background = core.Vec3{}
	return cfg
}

// CornellBox is the classic box-in-a-box test scene: five walls, an
// overhead light, and two rotated boxes.
func CornellBox() Scene {
	red, white, green, light := cornellMaterials()
	world := hittable.NewList()

	world.Add(hittable.NewQuad(core.NewVec3(555, 10, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(hittable.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(hittable.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	box1 := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	rotated1 := hittable.NewRotateY(box1, 15)
	world.Add(hittable.NewTranslate(rotated1, core.NewVec3(265, 0, 295)))

	box2 := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	rotated2 := hittable.NewRotateY(box2, -18)
	world.Add(hittable.NewTranslate(rotated2, core.NewVec3(130, 0, 65)))

	return Scene{World: world, Camera: cornellCamera()}
}

// CornellSmoke is CornellBox with the two boxes replaced by dark and
// light participating media, and a brighter light to compensate.
func CornellSmoke() Scene {
	red, white, green, _ := cornellMaterials()
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world := hittable.NewList()

	world.Add(hittable.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red))
	world.Add(hittable.NewQuad(core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), light))
	world.Add(hittable.NewQuad(core.NewVec3(0, 555, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white))
	world.Add(hittable.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white))

	box1 := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	rotated1 := hittable.NewRotateY(box1, 15)
	translated1 := hittable.NewTranslate(rotated1, core.NewVec3(265, 0, 295))
	world.Add(hittable.NewConstantMedium(translated1, 0.01, core.Vec3{}))

	box2 := hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	rotated2 := hittable.NewRotateY(box2, -18)
	translated2 := hittable.NewTranslate(rotated2, core.NewVec3(130, 0, 65))
	world.Add(hittable.NewConstantMedium(translated2, 0.01, core.NewVec3(1, 1, 1)))

	cfg := cornellCamera()
	cfg.VFov = 40
	return Scene{World: world, Camera: cfg}
}

// FinalScene is the book's closing demonstration scene: a tiled ground of
// random-height boxes, an area light, a motion-blurred sphere, glass and
// metal balls, a colored fog-filled glass boundary, a whole-scene
// atmospheric haze, an Earth-mapped sphere, a Perlin marble sphere, and a
// rotated, translated cluster of small spheres built from its own BVH.
// imageWidth/samplesPerPixel/maxDepth are parameterized because the CLI
// renders this scene at two different quality tiers (a quick preview and
// the full, slow final render).
func FinalScene(random *rand.Rand, imageWidth, samplesPerPixel, maxDepth int) (Scene, error) {
	world := hittable.NewList()
	boxes := hittable.NewList()

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const w = 100.0
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := float64(core.RandomInt(random, 1, 100))
			z1 := z0 + w
			boxes.Add(hittable.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}
	world.Add(hittable.NewBVH(boxes.Objects, random))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(hittable.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	movingSphereMat := material.NewLambertian(core.NewVec3(0.70, 0.3, 0.1))
	world.Add(hittable.NewMovingSphere(center1, center2, 50, movingSphereMat))

	world.Add(hittable.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(hittable.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	boundary := hittable.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(hittable.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	atmosphereBoundary := hittable.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(hittable.NewConstantMedium(atmosphereBoundary, 0.0001, core.NewVec3(1, 1, 1)))

	earthData, err := loaders.LoadImage("resources/earthmap.jpg")
	if err != nil {
		return Scene{}, err
	}
	earthMat := material.NewLambertianTexture(texture.NewImage(earthData))
	world.Add(hittable.NewSphere(core.NewVec3(400, 200, 400), 100, earthMat))

	pertext := texture.NewNoise(0.1, random)
	world.Add(hittable.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewLambertianTexture(pertext)))

	boxes2 := hittable.NewList()
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const ns = 1000
	for i := 0; i < ns; i++ {
		center := core.RandomVec3Range(random, 0, 165)
		boxes2.Add(hittable.NewSphere(center, 10, white))
	}
	cluster := hittable.NewRotateY(hittable.NewBVH(boxes2.Objects, random), 15)
	world.Add(hittable.NewTranslate(cluster, core.NewVec3(-100, 270, 395)))

	cfg := camera.DefaultConfig()
	cfg.ImageWidth = imageWidth
	cfg.AspectRatio = 1.0
	cfg.SamplesPerPixel = samplesPerPixel
	cfg.MaxDepth = maxDepth
	cfg.VFov = 40
	cfg.LookFrom = core.NewVec3(478, 278, -600)
	cfg.LookAt = core.NewVec3(278, 278, 0)
	cfg.DefocusAngle = 0
	cfg.Background = core.Vec3{}

	return Scene{World: world, Camera: cfg}, nil
}
