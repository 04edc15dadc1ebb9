package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalContainsVsSurrounds(t *testing.T) {
	i := NewInterval(0, 1)

	assert.True(t, i.Contains(0))
	assert.True(t, i.Contains(1))
	assert.False(t, i.Surrounds(0))
	assert.False(t, i.Surrounds(1))
	assert.True(t, i.Surrounds(0.5))
}

func TestIntervalEmptyAndUniverse(t *testing.T) {
	assert.False(t, Empty.Contains(0))
	assert.True(t, Universe.Contains(0))
	assert.True(t, math.IsInf(Empty.Size(), -1) || Empty.Size() < 0)
}

func TestIntervalClamp(t *testing.T) {
	i := NewInterval(0, 10)
	assert.Equal(t, 0.0, i.Clamp(-5))
	assert.Equal(t, 10.0, i.Clamp(15))
	assert.Equal(t, 4.0, i.Clamp(4))
}

func TestIntervalExpand(t *testing.T) {
	i := NewInterval(1, 1)
	expanded := i.Expand(2)
	assert.Equal(t, 0.0, expanded.Min)
	assert.Equal(t, 2.0, expanded.Max)
}

func TestIntervalMerge(t *testing.T) {
	a := NewInterval(0, 2)
	b := NewInterval(-1, 1)
	merged := a.Merge(b)
	assert.Equal(t, -1.0, merged.Min)
	assert.Equal(t, 2.0, merged.Max)
}
