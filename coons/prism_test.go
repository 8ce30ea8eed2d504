package coons

import (
	"math/rand"
	"testing"

	"github.com/notargets/coons/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	unitNodeX, unitNodeY = [3]float64{1, 0, 0}, [3]float64{0, 1, 0}
	skewNodeX, skewNodeY = [3]float64{2, 0.5, -0.3}, [3]float64{-0.2, 1.7, 0.1}
)

func constantPrism(c utils.Field) PrismBoundary {
	var (
		s = Sample{Value: c, Slope: utils.ZerosLike(c)}
	)
	return PrismBoundary{
		Bottom: constantTriangle(c),
		Top:    constantTriangle(c),
		Axis:   PrismAxes{U: s, V: s, W: s},
	}
}

func TestPrism(t *testing.T) {
	var (
		tol = 1.e-12
	)
	{ // Constant field
		for _, c := range []utils.Field{utils.NewScalar(1), utils.NewFieldConst([]int{3, 3}, 2)} {
			for _, p := range PrismLattice(4) {
				vol, err := Prism(p[0], p[1], p[2], constantPrism(c), skewNodeX, skewNodeY)
				require.NoError(t, err)
				assertField(t, c, vol.Value, tol)
				for i := 0; i < 3; i++ {
					assertField(t, utils.ZerosLike(c), vol.Grad[i], tol)
				}
			}
		}
	}
	{ // Linear reproduction in u, v and z on the unit triangle
		for i := 0; i < 3; i++ {
			pc := coordinate(i).prismCurves(unitNodeX, unitNodeY)
			for _, p := range [][]float64{{.2, .3, .5}, {.6, .1, .9}, {.1, .7, .2}} {
				r, err := pc.EvalPoint(p)
				require.NoError(t, err)
				assert.InDelta(t, p[i], r.Value.Data[0], tol)
				for j := 0; j < 3; j++ {
					expected := 0.
					if j == i {
						expected = 1
					}
					assert.InDelta(t, expected, r.Grad[j].Data[0], tol, "axis %d, partial %d", i, j)
				}
			}
		}
	}
	{ // The faces reproduce the triangle patches, their edges reproduce the data
		tf := withShape(smooth3D, 3, 3)
		pc := tf.prismCurves(skewNodeX, skewNodeY)
		for _, face := range []struct {
			z  float64
			tc TriangleCurves
		}{{0, pc.Bottom}, {1, pc.Top}} {
			for _, p := range [][]float64{{.2, .3}, {.5, .1}} {
				r, err := pc.EvalPoint([]float64{p[0], p[1], face.z})
				require.NoError(t, err)
				s, err := Triangle(p[0], p[1], face.tc.Boundary(p[0], p[1]))
				require.NoError(t, err)
				assertField(t, s.Value, r.Value, 1.e-10)
			}
			for _, p := range [][]float64{{0, .3}, {.4, 0}, {.6, .4}} {
				q := []float64{p[0], p[1], face.z}
				r, err := pc.EvalPoint(q)
				require.NoError(t, err)
				assertField(t, tf.field(q), r.Value, 1.e-10, "point %v", q)
			}
		}
	}
	{ // Derivative consistency in (u,v,z) at random interior points
		rng := rand.New(rand.NewSource(4))
		pc := withShape(smooth3D, 2).prismCurves(skewNodeX, skewNodeY)
		pc.Barycentric = true
		for n := 0; n < 20; n++ {
			p := randomSimplexPoint(rng)
			checkGradient(t, pc, []float64{p[0], p[1], 0.05 + 0.9*rng.Float64()})
		}
	}
	{ // Cartesian gradient is the mapped barycentric gradient
		pc := withShape(smooth3D, 2).prismCurves(skewNodeX, skewNodeY)
		b := pc.Boundary(.3, .25, .6)
		bary, err := PrismBarycentric(.3, .25, .6, b)
		require.NoError(t, err)
		cart, err := Prism(.3, .25, .6, b, skewNodeX, skewNodeY)
		require.NoError(t, err)
		dX, dY, err := MapBarycentricDerivatives(bary.Grad[0], bary.Grad[1], skewNodeX, skewNodeY)
		require.NoError(t, err)
		assertField(t, bary.Value, cart.Value, tol)
		assertField(t, dX, cart.Grad[0], tol)
		assertField(t, dY, cart.Grad[1], tol)
		assertField(t, bary.Grad[2], cart.Grad[2], tol)
	}
	{ // Shape mismatch across the two faces
		b := constantPrism(utils.NewFieldConst([]int{2}, 1))
		b.Top = constantTriangle(utils.NewFieldConst([]int{3}, 1))
		_, err := Prism(.2, .2, .5, b, unitNodeX, unitNodeY)
		assert.ErrorIs(t, err, utils.ErrShapeMismatch)
	}
}
