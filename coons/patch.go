/*
Package coons evaluates Coons (transfinite) interpolation patches and their
exact first derivatives over the unit square, unit triangle, unit cube and
triangular prism. Boundary values are utils.Field samples of any shape and
every operation is elementwise.
*/
package coons

import (
	"fmt"

	"github.com/notargets/coons/utils"
)

// Sample is an edge curve evaluated at the query's coordinate along the
// edge, together with its derivative along the edge direction
type Sample struct {
	Value, Slope utils.Field
}

// Surface is a patch value with its two parametric partials, (x,y) for the
// square and (u,v) for the triangle
type Surface struct {
	Value utils.Field
	Grad  [2]utils.Field
}

// Volume is a patch value with its three partials
type Volume struct {
	Value utils.Field
	Grad  [3]utils.Field
}

func (s Surface) IsFinite() bool {
	return s.Value.IsFinite() && s.Grad[0].IsFinite() && s.Grad[1].IsFinite()
}

func (v Volume) IsFinite() bool {
	return v.Value.IsFinite() && v.Grad[0].IsFinite() && v.Grad[1].IsFinite() && v.Grad[2].IsFinite()
}

func checkShapes(name string, fields []utils.Field) (err error) {
	if _, err = utils.Compatible(fields...); err != nil {
		err = fmt.Errorf("%s boundary: %w", name, err)
	}
	return
}

func appendSamples(fields []utils.Field, samples ...Sample) []utils.Field {
	for _, s := range samples {
		fields = append(fields, s.Value, s.Slope)
	}
	return fields
}
