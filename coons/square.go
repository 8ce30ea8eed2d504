package coons

import (
	"github.com/notargets/coons/utils"
)

// SquareCorners are the corner values, digits are x then y
type SquareCorners struct {
	C00, C10, C11, C01 utils.Field
}

/*
SquareEdges are the four edge curves of the unit square:

	Y0, Y1  edges y=0 and y=1, sampled at x, slopes d/dx
	X0, X1  edges x=0 and x=1, sampled at y, slopes d/dy
*/
type SquareEdges struct {
	Y0, X1, Y1, X0 Sample
}

type SquareBoundary struct {
	Corners SquareCorners
	Edges   SquareEdges
}

func (b SquareBoundary) fields() []utils.Field {
	c, e := b.Corners, b.Edges
	return appendSamples([]utils.Field{c.C00, c.C10, c.C11, c.C01},
		e.Y0, e.X1, e.Y1, e.X0)
}

// Square evaluates the bilinear Coons patch on the unit square,
// ruled_x + ruled_y - bilinear corners, with its x and y partials
func Square(x, y float64, b SquareBoundary) (s Surface, err error) {
	if err = checkShapes("square", b.fields()); err != nil {
		return
	}
	var (
		c, e = b.Corners, b.Edges
		W    = utils.Wt
		ox   = 1 - x
		oy   = 1 - y
	)
	// Ruled surfaces and the corner blend
	ruledX := utils.Combine(W(oy, e.Y0.Value), W(y, e.Y1.Value))
	ruledY := utils.Combine(W(ox, e.X0.Value), W(x, e.X1.Value))
	corner := utils.Combine(W(ox*oy, c.C00), W(x*oy, c.C10), W(x*y, c.C11), W(ox*y, c.C01))

	// d/dx
	ruledXdx := utils.Combine(W(oy, e.Y0.Slope), W(y, e.Y1.Slope))
	ruledYdx := utils.Combine(W(-1, e.X0.Value), W(1, e.X1.Value))
	cornerDx := utils.Combine(W(-oy, c.C00), W(oy, c.C10), W(y, c.C11), W(-y, c.C01))

	// d/dy
	ruledXdy := utils.Combine(W(-1, e.Y0.Value), W(1, e.Y1.Value))
	ruledYdy := utils.Combine(W(ox, e.X0.Slope), W(x, e.X1.Slope))
	cornerDy := utils.Combine(W(-ox, c.C00), W(-x, c.C10), W(x, c.C11), W(ox, c.C01))

	s.Value = utils.Combine(W(1, ruledX), W(1, ruledY), W(-1, corner))
	s.Grad[0] = utils.Combine(W(1, ruledXdx), W(1, ruledYdx), W(-1, cornerDx))
	s.Grad[1] = utils.Combine(W(1, ruledXdy), W(1, ruledYdy), W(-1, cornerDy))
	return
}
