package coons

// Projection is one projected edge parameter with its partials in u and v
type Projection struct {
	Value, DU, DV float64
}

/*
ProjectEdgeParams re-expresses a barycentric point (u,v), w = 1-u-v, as its
relative position along three projections toward the triangle's edges:

	wu = u/(1-v)   position along the line of constant v, from edge u=0
	wv = v/(1-u)   position along the line of constant u, from edge v=0
	uv = v/(u+v)   position along the line of constant w, from edge v=0

The triangle vertices are singular: (1,0) leaves wv indeterminate, (0,1)
leaves wu indeterminate and (0,0) leaves uv indeterminate, all returned as
NaN.
*/
func ProjectEdgeParams(u, v float64) (wu, wv, uv Projection) {
	var (
		ov = 1 - v
		ou = 1 - u
		s  = u + v
	)
	wu = Projection{Value: u / ov, DU: 1 / ov, DV: u / (ov * ov)}
	wv = Projection{Value: v / ou, DU: v / (ou * ou), DV: 1 / ou}
	uv = Projection{Value: v / s, DU: -v / (s * s), DV: u / (s * s)}
	return
}
