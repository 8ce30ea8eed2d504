package coons

import (
	"fmt"

	"github.com/notargets/coons/geometry2D"
	"github.com/notargets/coons/utils"
)

// MapBarycentricDerivatives converts partials in the barycentric (u,v) of a
// straight sided triangle into Cartesian (x,y) partials. Node 2 is the w
// vertex. Degenerate nodes produce non-finite output rather than an error.
func MapBarycentricDerivatives(dU, dV utils.Field, nodeX, nodeY [3]float64) (dX, dY utils.Field, err error) {
	if _, err = utils.Compatible(dU, dV); err != nil {
		err = fmt.Errorf("barycentric derivatives: %w", err)
		return
	}
	var (
		ux, uy, vx, vy = geometry2D.NewTriangle(nodeX, nodeY).InverseJacobian()
	)
	dX = utils.Combine(utils.Wt(ux, dU), utils.Wt(vx, dV))
	dY = utils.Combine(utils.Wt(uy, dU), utils.Wt(vy, dV))
	return
}
