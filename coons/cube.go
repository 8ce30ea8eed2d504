package coons

import (
	"github.com/notargets/coons/utils"
)

// CubeCorners are the eight corner values, digits are x, y then z
type CubeCorners struct {
	C000, C100, C110, C010, C001, C101, C111, C011 utils.Field
}

func (c CubeCorners) at(i, j, k int) utils.Field {
	return [2][2][2]utils.Field{
		{{c.C000, c.C001}, {c.C010, c.C011}},
		{{c.C100, c.C101}, {c.C110, c.C111}},
	}[i][j][k]
}

// CubeAxisEdges are the four cube edges parallel to one axis. The digits
// are the two transverse coordinates in x, y, z order with the axis left
// out: (y,z) for x edges, (x,z) for y edges, (x,y) for z edges.
type CubeAxisEdges struct {
	E00, E10, E11, E01 Sample
}

// CubeEdges are sampled at the query's coordinate along their own axis,
// slopes are derivatives along that axis
type CubeEdges struct {
	X, Y, Z CubeAxisEdges
}

type CubeBoundary struct {
	Corners CubeCorners
	Edges   CubeEdges
}

func (b CubeBoundary) fields() []utils.Field {
	c, e := b.Corners, b.Edges
	fields := []utils.Field{c.C000, c.C100, c.C110, c.C010, c.C001, c.C101, c.C111, c.C011}
	for _, ax := range []CubeAxisEdges{e.X, e.Y, e.Z} {
		fields = appendSamples(fields, ax.E00, ax.E10, ax.E11, ax.E01)
	}
	return fields
}

// axisBlend is the bilinear blend of four parallel edges over their
// transverse coordinates (a,b): the value, its derivative along the edges,
// and its derivatives in a and b
func axisBlend(a, b float64, ae CubeAxisEdges) (value, dAlong, dA, dB utils.Field) {
	var (
		W      = utils.Wt
		oa, ob = 1 - a, 1 - b
	)
	value = utils.Combine(W(oa*ob, ae.E00.Value), W(a*ob, ae.E10.Value), W(a*b, ae.E11.Value), W(oa*b, ae.E01.Value))
	dAlong = utils.Combine(W(oa*ob, ae.E00.Slope), W(a*ob, ae.E10.Slope), W(a*b, ae.E11.Slope), W(oa*b, ae.E01.Slope))
	dA = utils.Combine(W(-ob, ae.E00.Value), W(ob, ae.E10.Value), W(b, ae.E11.Value), W(-b, ae.E01.Value))
	dB = utils.Combine(W(-oa, ae.E00.Value), W(-a, ae.E10.Value), W(a, ae.E11.Value), W(oa, ae.E01.Value))
	return
}

// Cube evaluates the trilinear transfinite volume on the unit cube: the
// three axis edge blends less twice the trilinear corner blend
func Cube(x, y, z float64, b CubeBoundary) (vol Volume, err error) {
	if err = checkShapes("cube", b.fields()); err != nil {
		return
	}
	var (
		W     = utils.Wt
		e     = b.Edges
		coord = [3]float64{x, y, z}
	)
	xVal, xDx, xDy, xDz := axisBlend(y, z, e.X)
	yVal, yDy, yDx, yDz := axisBlend(x, z, e.Y)
	zVal, zDz, zDx, zDy := axisBlend(x, y, e.Z)

	// Trilinear corner blend, weight and gradient per corner
	var (
		cornerTerms [4][]utils.Term
	)
	basis := func(i int, t float64) (phi, dphi float64) {
		if i == 0 {
			return 1 - t, -1
		}
		return t, 1
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				var (
					px, dpx = basis(i, coord[0])
					py, dpy = basis(j, coord[1])
					pz, dpz = basis(k, coord[2])
					C       = b.Corners.at(i, j, k)
				)
				cornerTerms[0] = append(cornerTerms[0], W(px*py*pz, C))
				cornerTerms[1] = append(cornerTerms[1], W(dpx*py*pz, C))
				cornerTerms[2] = append(cornerTerms[2], W(px*dpy*pz, C))
				cornerTerms[3] = append(cornerTerms[3], W(px*py*dpz, C))
			}
		}
	}
	var corner [4]utils.Field
	for n := range corner {
		corner[n] = utils.Combine(cornerTerms[n]...)
	}

	vol.Value = utils.Combine(W(1, xVal), W(1, yVal), W(1, zVal), W(-2, corner[0]))
	vol.Grad[0] = utils.Combine(W(1, xDx), W(1, yDx), W(1, zDx), W(-2, corner[1]))
	vol.Grad[1] = utils.Combine(W(1, xDy), W(1, yDy), W(1, zDy), W(-2, corner[2]))
	vol.Grad[2] = utils.Combine(W(1, xDz), W(1, yDz), W(1, zDz), W(-2, corner[3]))
	return
}
