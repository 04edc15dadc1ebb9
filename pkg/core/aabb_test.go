package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBHitStraightThrough(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1))
	require.True(t, box.Hit(ray, NewInterval(0, 100)))
}

func TestAABBMissParallel(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))
	require.False(t, box.Hit(ray, NewInterval(0, 100)))
}

func TestAABBHitDoesNotMutateCallerInterval(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1))

	rayT := NewInterval(0, 100)
	before := rayT
	box.Hit(ray, rayT)
	assert.Equal(t, before, rayT)
}

func TestAABBMerge(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(0.5, 0.5, 0.5))
	merged := a.Merge(b)

	assert.Equal(t, -1.0, merged.X.Min)
	assert.Equal(t, 1.0, merged.X.Max)
}

func TestAABBAddShiftsEachAxisIndependently(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	shifted := box.Add(NewVec3(1, 2, 3))

	assert.Equal(t, NewInterval(1, 2), shifted.X)
	assert.Equal(t, NewInterval(2, 3), shifted.Y)
	assert.Equal(t, NewInterval(3, 4), shifted.Z)
}

func TestAABBPadExpandsDegenerateAxis(t *testing.T) {
	box := NewAABB(NewInterval(0, 0), NewInterval(0, 1), NewInterval(0, 1))
	padded := box.Pad()
	assert.Greater(t, padded.X.Size(), 0.0)
}

func TestAABBLongestAxis(t *testing.T) {
	box := NewAABB(NewInterval(0, 5), NewInterval(0, 1), NewInterval(0, 2))
	assert.Equal(t, 0, box.LongestAxis())
}
