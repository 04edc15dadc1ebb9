package material

import (
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
	"github.com/colinmarsh/nextweek-tracer/pkg/texture"
)

// DiffuseLight never scatters; it only emits its texture's value. Emission
// does not depend on which face was hit, so a Quad with this material
// lights both of its sides.
type DiffuseLight struct {
	Emission texture.Texture
}

// NewDiffuseLight builds an emissive material from a flat emission color.
func NewDiffuseLight(color core.Color) *DiffuseLight {
	return &DiffuseLight{Emission: texture.NewSolidColor(color)}
}

// NewDiffuseLightTexture builds an emissive material from an arbitrary
// emission texture.
func NewDiffuseLightTexture(emission texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emit(u, v float64, p core.Vec3) core.Color {
	return d.Emission.Value(u, v, p)
}
