package texture

import (
	"math"
	"math/rand"

	"github.com/colinmarsh/nextweek-tracer/pkg/core"
)

const perlinPointCount = 256

// perlin is a Perlin-noise generator producing band-limited value noise,
// used by the marbled Noise texture and by turbulence-based variants.
type perlin struct {
	ranvec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

func newPerlin(random *rand.Rand) *perlin {
	ranvec := make([]core.Vec3, perlinPointCount)
	for i := range ranvec {
		ranvec[i] = core.RandomVec3Range(random, 0, 1)
	}
	return &perlin{
		ranvec: ranvec,
		permX:  perlinGeneratePerm(random),
		permY:  perlinGeneratePerm(random),
		permZ:  perlinGeneratePerm(random),
	}
}

func perlinGeneratePerm(random *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise samples smoothed value noise at p, returning a value in [-1, 1].
func (pn *perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				ii := (i + di) & 255
				jj := (j + dj) & 255
				kk := (k + dk) & 255
				idx := pn.permX[ii] ^ pn.permY[jj] ^ pn.permZ[kk]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}
	return trilinearInterp(c, u, v, w)
}

func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww))
				accum += weight * c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// Turb accumulates depth octaves of noise with halving weight and doubling
// frequency, returning the absolute value of the sum.
func (pn *perlin) Turb(p core.Vec3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}
	return math.Abs(accum)
}
