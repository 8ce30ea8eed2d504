package coons

import (
	"math"
	"testing"

	"github.com/notargets/coons/utils"
	"github.com/stretchr/testify/assert"
)

// testFunc is a smooth scalar function spread over a field shape; element
// e of the field is (e+1)*g(p) + e/10
type testFunc struct {
	g     func(p []float64) float64
	dg    func(p []float64) []float64
	shape []int
}

func (tf testFunc) field(p []float64) (F utils.Field) {
	F = utils.NewField(tf.shape)
	g := tf.g(p)
	for e := range F.Data {
		F.Data[e] = float64(e+1)*g + float64(e)/10
	}
	return
}

// directional derivative of the field along dir
func (tf testFunc) dirField(p, dir []float64) (F utils.Field) {
	F = utils.NewField(tf.shape)
	var (
		grad = tf.dg(p)
		d    float64
	)
	for i := range dir {
		d += grad[i] * dir[i]
	}
	for e := range F.Data {
		F.Data[e] = float64(e+1) * d
	}
	return
}

// lineCurve samples a testFunc along the straight edge from -> to
type lineCurve struct {
	tf       testFunc
	from, to []float64
}

func (lc lineCurve) At(t float64) Sample {
	var (
		p   = make([]float64, len(lc.from))
		dir = make([]float64, len(lc.from))
	)
	for i := range p {
		p[i] = (1-t)*lc.from[i] + t*lc.to[i]
		dir[i] = lc.to[i] - lc.from[i]
	}
	return Sample{Value: lc.tf.field(p), Slope: lc.tf.dirField(p, dir)}
}

func (tf testFunc) line(from, to []float64) Curve {
	return lineCurve{tf: tf, from: from, to: to}
}

func (tf testFunc) squareCurves() *SquareCurves {
	var (
		p00, p10, p11, p01 = []float64{0, 0}, []float64{1, 0}, []float64{1, 1}, []float64{0, 1}
	)
	return &SquareCurves{
		Corners: SquareCorners{C00: tf.field(p00), C10: tf.field(p10), C11: tf.field(p11), C01: tf.field(p01)},
		Y0:      tf.line(p00, p10),
		X1:      tf.line(p10, p11),
		Y1:      tf.line(p01, p11),
		X0:      tf.line(p00, p01),
	}
}

// triangleCurves places the u, v and w vertices at U, V and W, which may
// carry extra coordinates (a z level for prism faces)
func (tf testFunc) triangleCurves(U, V, W []float64) TriangleCurves {
	return TriangleCurves{
		Corners: TriangleCorners{U: tf.field(U), V: tf.field(V), W: tf.field(W)},
		WU:      tf.line(W, U),
		UV:      tf.line(U, V),
		VU:      tf.line(V, U),
		WV:      tf.line(W, V),
		VW:      tf.line(V, W),
		UW:      tf.line(U, W),
	}
}

func (tf testFunc) unitTriangleCurves() *TriangleCurves {
	tc := tf.triangleCurves([]float64{1, 0}, []float64{0, 1}, []float64{0, 0})
	return &tc
}

func (tf testFunc) cubeCurves() *CubeCurves {
	c := func(x, y, z float64) []float64 { return []float64{x, y, z} }
	return &CubeCurves{
		Corners: CubeCorners{
			C000: tf.field(c(0, 0, 0)), C100: tf.field(c(1, 0, 0)),
			C110: tf.field(c(1, 1, 0)), C010: tf.field(c(0, 1, 0)),
			C001: tf.field(c(0, 0, 1)), C101: tf.field(c(1, 0, 1)),
			C111: tf.field(c(1, 1, 1)), C011: tf.field(c(0, 1, 1)),
		},
		X: CubeAxisCurves{ // transverse (y,z)
			E00: tf.line(c(0, 0, 0), c(1, 0, 0)), E10: tf.line(c(0, 1, 0), c(1, 1, 0)),
			E11: tf.line(c(0, 1, 1), c(1, 1, 1)), E01: tf.line(c(0, 0, 1), c(1, 0, 1)),
		},
		Y: CubeAxisCurves{ // transverse (x,z)
			E00: tf.line(c(0, 0, 0), c(0, 1, 0)), E10: tf.line(c(1, 0, 0), c(1, 1, 0)),
			E11: tf.line(c(1, 0, 1), c(1, 1, 1)), E01: tf.line(c(0, 0, 1), c(0, 1, 1)),
		},
		Z: CubeAxisCurves{ // transverse (x,y)
			E00: tf.line(c(0, 0, 0), c(0, 0, 1)), E10: tf.line(c(1, 0, 0), c(1, 0, 1)),
			E11: tf.line(c(1, 1, 0), c(1, 1, 1)), E01: tf.line(c(0, 1, 0), c(0, 1, 1)),
		},
	}
}

// prismCurves works in (u,v,z) coordinates
func (tf testFunc) prismCurves(nodeX, nodeY [3]float64) *PrismCurves {
	c := func(u, v, z float64) []float64 { return []float64{u, v, z} }
	return &PrismCurves{
		Bottom: tf.triangleCurves(c(1, 0, 0), c(0, 1, 0), c(0, 0, 0)),
		Top:    tf.triangleCurves(c(1, 0, 1), c(0, 1, 1), c(0, 0, 1)),
		U:      tf.line(c(1, 0, 0), c(1, 0, 1)),
		V:      tf.line(c(0, 1, 0), c(0, 1, 1)),
		W:      tf.line(c(0, 0, 0), c(0, 0, 1)),
		NodeX:  nodeX,
		NodeY:  nodeY,
	}
}

var (
	smooth2D = testFunc{
		g: func(p []float64) float64 {
			return math.Sin(2*p[0]) + p[0]*p[1]*p[1] + math.Cos(3*p[1])
		},
		dg: func(p []float64) []float64 {
			return []float64{2*math.Cos(2*p[0]) + p[1]*p[1], 2*p[0]*p[1] - 3*math.Sin(3*p[1])}
		},
	}
	smooth3D = testFunc{
		g: func(p []float64) float64 {
			return math.Sin(p[0]+2*p[1])*(1+p[2]*p[2]) + p[0]*p[2] + math.Exp(p[1]*p[2])
		},
		dg: func(p []float64) []float64 {
			s, c := math.Sin(p[0]+2*p[1]), math.Cos(p[0]+2*p[1])
			e := math.Exp(p[1] * p[2])
			return []float64{
				c*(1+p[2]*p[2]) + p[2],
				2*c*(1+p[2]*p[2]) + p[2]*e,
				2*p[2]*s + p[0] + p[1]*e,
			}
		},
	}
)

func withShape(tf testFunc, shape ...int) testFunc {
	tf.shape = shape
	return tf
}

func coordinate(i int, shape ...int) testFunc {
	return testFunc{
		g: func(p []float64) float64 { return p[i] },
		dg: func(p []float64) []float64 {
			d := make([]float64, 3)
			d[i] = 1
			return d
		},
		shape: shape,
	}
}

// checkGradient compares analytic partials against centered differences of
// the value over every coordinate
func checkGradient(t *testing.T, ev Evaluator, p []float64) {
	const (
		h   = 1.e-5
		tol = 1.e-5
	)
	r, err := ev.EvalPoint(p)
	assert.NoError(t, err)
	for i := range p {
		pp := append([]float64{}, p...)
		pm := append([]float64{}, p...)
		pp[i] += h
		pm[i] -= h
		rp, err := ev.EvalPoint(pp)
		assert.NoError(t, err)
		rm, err := ev.EvalPoint(pm)
		assert.NoError(t, err)
		fd := rp.Value.Sub(rm.Value).Scale(0.5 / h)
		for e := range fd.Data {
			scale := math.Max(1, math.Abs(r.Grad[i].Data[e]))
			assert.InDelta(t, fd.Data[e], r.Grad[i].Data[e], tol*scale,
				"point %v, partial %d, element %d", p, i, e)
		}
	}
}

func assertField(t *testing.T, expected, actual utils.Field, tol float64, msgAndArgs ...interface{}) {
	assert.Equal(t, expected.Shape, actual.Shape, msgAndArgs...)
	assert.InDeltaSlice(t, expected.Data, actual.Data, tol, msgAndArgs...)
}
