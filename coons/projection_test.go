package coons

import (
	"math"
	"testing"

	"github.com/notargets/coons/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectEdgeParams(t *testing.T) {
	var (
		tol = 1.e-12
	)
	{ // Values and partials at an interior point
		u, v := 0.2, 0.3
		wu, wv, uv := ProjectEdgeParams(u, v)
		assert.InDelta(t, 0.2/0.7, wu.Value, tol)
		assert.InDelta(t, 1/0.7, wu.DU, tol)
		assert.InDelta(t, 0.2/0.49, wu.DV, tol)
		assert.InDelta(t, 0.3/0.8, wv.Value, tol)
		assert.InDelta(t, 0.3/0.64, wv.DU, tol)
		assert.InDelta(t, 1/0.8, wv.DV, tol)
		assert.InDelta(t, 0.6, uv.Value, tol)
		assert.InDelta(t, -0.3/0.25, uv.DU, tol)
		assert.InDelta(t, 0.2/0.25, uv.DV, tol)
	}
	{ // Partials agree with centered differences
		const h = 1.e-6
		for _, p := range [][2]float64{{.1, .1}, {.25, .6}, {.7, .2}, {.33, .33}} {
			proj := func(u, v float64) [3]Projection {
				a, b, c := ProjectEdgeParams(u, v)
				return [3]Projection{a, b, c}
			}
			center := proj(p[0], p[1])
			du1, du2 := proj(p[0]+h, p[1]), proj(p[0]-h, p[1])
			dv1, dv2 := proj(p[0], p[1]+h), proj(p[0], p[1]-h)
			for n := 0; n < 3; n++ {
				assert.InDelta(t, (du1[n].Value-du2[n].Value)/(2*h), center[n].DU, 1.e-6)
				assert.InDelta(t, (dv1[n].Value-dv2[n].Value)/(2*h), center[n].DV, 1.e-6)
			}
		}
	}
	{ // Vertices are singular
		nonFinite := func(p ...Projection) bool {
			for _, pr := range p {
				for _, x := range []float64{pr.Value, pr.DU, pr.DV} {
					if math.IsNaN(x) || math.IsInf(x, 0) {
						return true
					}
				}
			}
			return false
		}
		for _, vert := range [][2]float64{{1, 0}, {0, 1}, {0, 0}} {
			wu, wv, uv := ProjectEdgeParams(vert[0], vert[1])
			assert.True(t, nonFinite(wu, wv, uv), "vertex %v", vert)
		}
		_, wv, _ := ProjectEdgeParams(1, 0)
		assert.True(t, math.IsNaN(wv.Value))
		wu, _, _ := ProjectEdgeParams(0, 1)
		assert.True(t, math.IsNaN(wu.Value))
		_, _, uv := ProjectEdgeParams(0, 0)
		assert.True(t, math.IsNaN(uv.Value))
	}
}

func TestMapBarycentricDerivatives(t *testing.T) {
	var (
		tol          = 1.e-12
		nodeX, nodeY = [3]float64{3, 0.5, -1}, [3]float64{0.2, 2, -0.5}
	)
	{ // A physically linear field g = a*x + b*y maps back to (a,b)
		a, b := utils.NewField([]int{2}, []float64{1.5, -2}), utils.NewField([]int{2}, []float64{0.25, 4})
		xu, xv := nodeX[0]-nodeX[2], nodeX[1]-nodeX[2]
		yu, yv := nodeY[0]-nodeY[2], nodeY[1]-nodeY[2]
		dU := utils.Combine(utils.Wt(xu, a), utils.Wt(yu, b))
		dV := utils.Combine(utils.Wt(xv, a), utils.Wt(yv, b))
		dX, dY, err := MapBarycentricDerivatives(dU, dV, nodeX, nodeY)
		require.NoError(t, err)
		assertField(t, a, dX, tol)
		assertField(t, b, dY, tol)
	}
	{ // Unit triangle is the identity
		dU, dV := utils.NewScalar(2), utils.NewScalar(3)
		dX, dY, err := MapBarycentricDerivatives(dU, dV, [3]float64{1, 0, 0}, [3]float64{0, 1, 0})
		require.NoError(t, err)
		assert.Equal(t, 2., dX.Data[0])
		assert.Equal(t, 3., dY.Data[0])
	}
	{ // Degenerate nodes give non-finite derivatives
		dX, dY, err := MapBarycentricDerivatives(utils.NewScalar(1), utils.NewScalar(1),
			[3]float64{0, 1, 2}, [3]float64{0, 1, 2})
		require.NoError(t, err)
		assert.False(t, dX.IsFinite() && dY.IsFinite())
	}
	{ // Shape mismatch
		_, _, err := MapBarycentricDerivatives(utils.NewField([]int{2}), utils.NewField([]int{3}), nodeX, nodeY)
		assert.ErrorIs(t, err, utils.ErrShapeMismatch)
	}
}
