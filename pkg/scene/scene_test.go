package scene

import (
	"math/rand"
	"testing"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/hittable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomBallsBuildsAndHits(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	s := RandomBalls(random)
	require.NotNil(t, s.World)
	assert.Greater(t, s.Camera.ImageWidth, 0)

	// straight down through the central glass ball onto the ground sphere
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	_, hit := s.World.Hit(ray, core.NewInterval(0.001, 100), random)
	assert.True(t, hit)
}

func TestTwoSpheresHasNoDefocus(t *testing.T) {
	s := TwoSpheres()
	assert.Equal(t, 0.0, s.Camera.DefocusAngle)
}

func TestTwoPerlinSpheresBuilds(t *testing.T) {
	random := rand.New(rand.NewSource(2))
	s := TwoPerlinSpheres(random)
	require.NotNil(t, s.World)
}

func TestQuadsUsesSquareAspectRatio(t *testing.T) {
	s := Quads()
	assert.Equal(t, 1.0, s.Camera.AspectRatio)
	assert.Equal(t, 80.0, s.Camera.VFov)
}

func TestSimpleLightHasBlackBackground(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	s := SimpleLight(random)
	assert.Equal(t, 0.0, s.Camera.Background.X)
}

func TestCornellBoxHasSixWallsPlusTwoBoxes(t *testing.T) {
	s := CornellBox()
	assert.NotNil(t, s.World)
	assert.Equal(t, 40.0, s.Camera.VFov)

	// five walls and the ceiling light quad, plus the two transformed boxes
	list, ok := s.World.(*hittable.List)
	require.True(t, ok)
	assert.Len(t, list.Objects, 8)
}

func TestCornellSmokeBuilds(t *testing.T) {
	s := CornellSmoke()
	assert.NotNil(t, s.World)
}

func TestEarthFailsWithoutResourceFile(t *testing.T) {
	_, err := Earth()
	assert.Error(t, err)
}

func TestFinalSceneFailsWithoutResourceFile(t *testing.T) {
	random := rand.New(rand.NewSource(4))
	_, err := FinalScene(random, 400, 250, 4)
	assert.Error(t, err)
}
