package camera

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/hittable"
	"github.com/colinmarsh/nextweek-tracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesImageHeightFromAspectRatio(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 400
	cfg.AspectRatio = 16.0 / 9.0
	cam := New(cfg)
	assert.Equal(t, 225, cam.ImageHeight())
}

func TestNewNeverReturnsZeroHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 1
	cfg.AspectRatio = 1000
	cam := New(cfg)
	assert.GreaterOrEqual(t, cam.ImageHeight(), 1)
}

func TestGetRayOriginWithoutDefocusIsLookFrom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefocusAngle = 0
	cam := New(cfg)
	random := rand.New(rand.NewSource(1))

	ray := cam.GetRay(0, 0, random)
	assert.Equal(t, cfg.LookFrom, ray.Origin)
	assert.GreaterOrEqual(t, ray.Time, 0.0)
	assert.Less(t, ray.Time, 1.0)
}

func TestRayColorReturnsBackgroundOnMiss(t *testing.T) {
	world := hittable.NewList()
	background := core.NewVec3(0.1, 0.2, 0.3)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, 10, world, background, random)
	assert.Equal(t, background, got)
}

func TestRayColorReturnsBlackAtZeroDepth(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, 0, world, core.Vec3{}, random)
	assert.Equal(t, core.Vec3{}, got)
}

func TestRayColorPicksUpEmission(t *testing.T) {
	world := hittable.NewList()
	world.Add(hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := RayColor(ray, 10, world, core.Vec3{}, random)
	assert.Equal(t, core.NewVec3(4, 4, 4), got)
}

func TestRenderProducesValidPPMHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ImageWidth = 4
	cfg.SamplesPerPixel = 1
	cfg.MaxDepth = 2
	cam := New(cfg)

	world := hittable.NewList()
	world.Add(hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	var buf bytes.Buffer
	require.NoError(t, Render(cam, world, &buf, nil))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "P3", lines[0])
	assert.Equal(t, "255", lines[2])
}
