package coons

import (
	"fmt"

	"github.com/notargets/coons/utils"
)

// PrismAxes are the three vertical prism edges through the u, v and w
// vertices, sampled at z with slopes d/dz
type PrismAxes struct {
	U, V, W Sample
}

// PrismBoundary holds the triangle faces at z=0 (Bottom) and z=1 (Top) and
// the vertical edges. The corners of Bottom and Top are the six prism
// corners.
type PrismBoundary struct {
	Bottom, Top TriangleBoundary
	Axis        PrismAxes
}

func (b PrismBoundary) fields() []utils.Field {
	fields := append(b.Bottom.fields(), b.Top.fields()...)
	return appendSamples(fields, b.Axis.U, b.Axis.V, b.Axis.W)
}

// PrismBarycentric evaluates the prism volume with its partials in u, v and z
func PrismBarycentric(u, v, z float64, b PrismBoundary) (vol Volume, err error) {
	if err = checkShapes("prism", b.fields()); err != nil {
		return
	}
	var (
		W      = utils.Wt
		w      = 1 - u - v
		oz     = 1 - z
		ax     = b.Axis
		c0, c1 = b.Bottom.Corners, b.Top.Corners
		t0     = triangle(u, v, b.Bottom)
		t1     = triangle(u, v, b.Top)
	)
	// Faces blended across z
	zBlend := utils.Combine(W(oz, t0.Value), W(z, t1.Value))
	zBlendDu := utils.Combine(W(oz, t0.Grad[0]), W(z, t1.Grad[0]))
	zBlendDv := utils.Combine(W(oz, t0.Grad[1]), W(z, t1.Grad[1]))
	zBlendDz := utils.Combine(W(-1, t0.Value), W(1, t1.Value))

	// Lateral contribution of the vertical edges
	axis := utils.Combine(W(u, ax.U.Value), W(v, ax.V.Value), W(w, ax.W.Value))
	axisDu := utils.Combine(W(1, ax.U.Value), W(-1, ax.W.Value))
	axisDv := utils.Combine(W(1, ax.V.Value), W(-1, ax.W.Value))
	axisDz := utils.Combine(W(u, ax.U.Slope), W(v, ax.V.Slope), W(w, ax.W.Slope))

	// Corner correction, linear in z between the two faces
	lin0 := utils.Combine(W(u, c0.U), W(v, c0.V), W(w, c0.W))
	lin1 := utils.Combine(W(u, c1.U), W(v, c1.V), W(w, c1.W))
	corner := utils.Combine(W(oz, lin0), W(z, lin1))
	cornerDu := utils.Combine(W(oz, c0.U), W(-oz, c0.W), W(z, c1.U), W(-z, c1.W))
	cornerDv := utils.Combine(W(oz, c0.V), W(-oz, c0.W), W(z, c1.V), W(-z, c1.W))
	cornerDz := utils.Combine(W(-1, lin0), W(1, lin1))

	vol.Value = utils.Combine(W(1, zBlend), W(.5, axis), W(-.5, corner))
	vol.Grad[0] = utils.Combine(W(1, zBlendDu), W(.5, axisDu), W(-.5, cornerDu))
	vol.Grad[1] = utils.Combine(W(1, zBlendDv), W(.5, axisDv), W(-.5, cornerDv))
	vol.Grad[2] = utils.Combine(W(1, zBlendDz), W(.5, axisDz), W(-.5, cornerDz))
	return
}

// Prism evaluates the prism volume with its partials in the Cartesian x, y
// of the physical triangle given by the reference nodes, and in z
func Prism(u, v, z float64, b PrismBoundary, nodeX, nodeY [3]float64) (vol Volume, err error) {
	if vol, err = PrismBarycentric(u, v, z, b); err != nil {
		return
	}
	if vol.Grad[0], vol.Grad[1], err = MapBarycentricDerivatives(vol.Grad[0], vol.Grad[1], nodeX, nodeY); err != nil {
		err = fmt.Errorf("prism: %w", err)
	}
	return
}
