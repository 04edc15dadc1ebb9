package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Subtract(b))
	assert.Equal(t, NewVec3(2, 4, 6), a.Multiply(2))
	assert.Equal(t, NewVec3(4, 10, 18), a.MultiplyVec(b))
	assert.InDelta(t, 32.0, a.Dot(b), 1e-12)
}

func TestVec3Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	require.Equal(t, NewVec3(0, 0, 1), x.Cross(y))
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0)
	n := v.Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)

	// zero vector normalizes to itself, not NaN
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3NearZero(t *testing.T) {
	assert.True(t, NewVec3(1e-9, -1e-9, 0).NearZero())
	assert.False(t, NewVec3(1e-3, 0, 0).NearZero())
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-1, 0.5, 2)
	clamped := v.Clamp(0, 1)
	assert.Equal(t, NewVec3(0, 0.5, 1), clamped)
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := Reflect(v, n)
	assert.Equal(t, NewVec3(1, 1, 0), r)
}

func TestRefractAndSchlick(t *testing.T) {
	// normal incidence: refracted direction should continue straight through
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	refracted := Refract(uv, n, 1.0/1.5)
	assert.InDelta(t, 0, refracted.X, 1e-9)
	assert.InDelta(t, -1, refracted.Y, 1e-6)

	// at normal incidence, Schlick reflectance should equal r0
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	assert.InDelta(t, r0, Schlick(1.0, 1.5), 1e-12)
}

func TestRandomUnitVectorIsUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(random)
		assert.InDelta(t, 1.0, v.Length(), 1e-9)
	}
}

func TestRandomOnHemisphereStaysAboveNormal(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	normal := NewVec3(0, 0, 1)
	for i := 0; i < 1000; i++ {
		v := RandomOnHemisphere(normal, random)
		assert.GreaterOrEqual(t, v.Dot(normal), 0.0)
	}
}

func TestRandomInUnitDiskStaysInDisk(t *testing.T) {
	random := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		assert.LessOrEqual(t, p.LengthSquared(), 1.0)
		assert.Equal(t, 0.0, p.Z)
	}
}
