package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(1, 2, 3), NewVec3(1, 0, 0))
	assert.Equal(t, NewVec3(3, 2, 3), r.At(2))
}

func TestRayAtTimeStamp(t *testing.T) {
	r := NewRayAtTime(NewVec3(0, 0, 0), NewVec3(0, 1, 0), 0.37)
	assert.Equal(t, 0.37, r.Time)
	assert.Equal(t, 0.0, NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)).Time)
}
