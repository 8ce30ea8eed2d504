package coons

import (
	"github.com/notargets/coons/utils"
)

// TriangleCorners are the values at the u vertex (1,0), the v vertex (0,1)
// and the w vertex (0,0)
type TriangleCorners struct {
	U, V, W utils.Field
}

/*
TriangleEdges holds one sample per directed edge k→l. Edge k→l is
parametrized by the barycentric coordinate of vertex l, running from 0 at
vertex k to 1 at vertex l, and is sampled where the projection line through
the query point meets it:

	WU, VU  sampled at u (lines of constant u)
	WV, UV  sampled at v (lines of constant v)
	UW, VW  sampled at w = 1-u-v (lines of constant w)

Slopes are derivatives with respect to that coordinate. Each physical edge
appears twice, once per direction.
*/
type TriangleEdges struct {
	WU, UV, VU, WV, VW, UW Sample
}

type TriangleBoundary struct {
	Corners TriangleCorners
	Edges   TriangleEdges
}

func (b TriangleBoundary) fields() []utils.Field {
	c, e := b.Corners, b.Edges
	return appendSamples([]utils.Field{c.U, c.V, c.W},
		e.WU, e.UV, e.VU, e.WV, e.VW, e.UW)
}

// Triangle evaluates the Coons patch on the unit triangle with its u and v
// partials. (u,v) must lie in the open simplex, vertices give NaN.
func Triangle(u, v float64, b TriangleBoundary) (s Surface, err error) {
	if err = checkShapes("triangle", b.fields()); err != nil {
		return
	}
	s = triangle(u, v, b)
	return
}

func triangle(u, v float64, b TriangleBoundary) (s Surface) {
	var (
		c, e       = b.Corners, b.Edges
		W          = utils.Wt
		w          = 1 - u - v
		wu, wv, uv = ProjectEdgeParams(u, v)
	)
	// Ruled blends along each projection and the barycentric corner blend
	ruledU := utils.Combine(W(1-wu.Value, e.WV.Value), W(wu.Value, e.UV.Value))
	ruledV := utils.Combine(W(1-wv.Value, e.WU.Value), W(wv.Value, e.VU.Value))
	ruledW := utils.Combine(W(1-uv.Value, e.UW.Value), W(uv.Value, e.VW.Value))
	corner := utils.Combine(W(u, c.U), W(v, c.V), W(w, c.W))

	// ruledU: WV and UV vary with v only
	ruledUdu := utils.Combine(W(-wu.DU, e.WV.Value), W(wu.DU, e.UV.Value))
	ruledUdv := utils.Combine(
		W(1-wu.Value, e.WV.Slope), W(wu.Value, e.UV.Slope),
		W(-wu.DV, e.WV.Value), W(wu.DV, e.UV.Value))

	// ruledV: WU and VU vary with u only
	ruledVdu := utils.Combine(
		W(1-wv.Value, e.WU.Slope), W(wv.Value, e.VU.Slope),
		W(-wv.DU, e.WU.Value), W(wv.DU, e.VU.Value))
	ruledVdv := utils.Combine(W(-wv.DV, e.WU.Value), W(wv.DV, e.VU.Value))

	// ruledW: UW and VW vary with w, dw/du = dw/dv = -1
	ruledWdu := utils.Combine(
		W(-(1 - uv.Value), e.UW.Slope), W(-uv.Value, e.VW.Slope),
		W(-uv.DU, e.UW.Value), W(uv.DU, e.VW.Value))
	ruledWdv := utils.Combine(
		W(-(1 - uv.Value), e.UW.Slope), W(-uv.Value, e.VW.Slope),
		W(-uv.DV, e.UW.Value), W(uv.DV, e.VW.Value))

	cornerDu := utils.Combine(W(1, c.U), W(-1, c.W))
	cornerDv := utils.Combine(W(1, c.V), W(-1, c.W))

	// Every physical edge is reached through two projections, hence the half
	s.Value = utils.Combine(W(.5, ruledU), W(.5, ruledV), W(.5, ruledW), W(-.5, corner))
	s.Grad[0] = utils.Combine(W(.5, ruledUdu), W(.5, ruledVdu), W(.5, ruledWdu), W(-.5, cornerDu))
	s.Grad[1] = utils.Combine(W(.5, ruledUdv), W(.5, ruledVdv), W(.5, ruledWdv), W(-.5, cornerDv))
	return
}
