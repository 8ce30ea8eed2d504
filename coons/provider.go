package coons

import (
	"fmt"

	"github.com/notargets/coons/utils"
)

// Result is a patch evaluated at one query point; Grad has one partial per
// coordinate of the evaluator's output frame
type Result struct {
	Point []float64
	Value utils.Field
	Grad  []utils.Field
}

// Evaluator evaluates a patch at query points of a fixed dimension. All
// implementations here are read only and safe for concurrent use.
type Evaluator interface {
	Dim() int
	EvalPoint(p []float64) (Result, error)
}

func checkDim(ev Evaluator, p []float64) error {
	if len(p) != ev.Dim() {
		return fmt.Errorf("query point %v has %d coordinates, need %d", p, len(p), ev.Dim())
	}
	return nil
}

func surfaceResult(p []float64, s Surface) Result {
	return Result{Point: p, Value: s.Value, Grad: s.Grad[:]}
}

func volumeResult(p []float64, vol Volume) Result {
	return Result{Point: p, Value: vol.Value, Grad: vol.Grad[:]}
}

// SquareCurves supplies square boundary data from edge curves,
// see SquareEdges for the parametrization
type SquareCurves struct {
	Corners        SquareCorners
	Y0, X1, Y1, X0 Curve
}

func (sc *SquareCurves) Boundary(x, y float64) SquareBoundary {
	return SquareBoundary{
		Corners: sc.Corners,
		Edges: SquareEdges{
			Y0: sc.Y0.At(x), Y1: sc.Y1.At(x),
			X0: sc.X0.At(y), X1: sc.X1.At(y),
		},
	}
}

func (sc *SquareCurves) Dim() int { return 2 }

func (sc *SquareCurves) EvalPoint(p []float64) (r Result, err error) {
	if err = checkDim(sc, p); err != nil {
		return
	}
	var s Surface
	if s, err = Square(p[0], p[1], sc.Boundary(p[0], p[1])); err != nil {
		return
	}
	return surfaceResult(p, s), nil
}

// TriangleCurves supplies triangle boundary data from directed edge
// curves, see TriangleEdges for the parametrization
type TriangleCurves struct {
	Corners                TriangleCorners
	WU, UV, VU, WV, VW, UW Curve
}

func (tc *TriangleCurves) Boundary(u, v float64) TriangleBoundary {
	w := 1 - u - v
	return TriangleBoundary{
		Corners: tc.Corners,
		Edges: TriangleEdges{
			WU: tc.WU.At(u), VU: tc.VU.At(u),
			WV: tc.WV.At(v), UV: tc.UV.At(v),
			UW: tc.UW.At(w), VW: tc.VW.At(w),
		},
	}
}

func (tc *TriangleCurves) Dim() int { return 2 }

func (tc *TriangleCurves) EvalPoint(p []float64) (r Result, err error) {
	if err = checkDim(tc, p); err != nil {
		return
	}
	var s Surface
	if s, err = Triangle(p[0], p[1], tc.Boundary(p[0], p[1])); err != nil {
		return
	}
	return surfaceResult(p, s), nil
}

// CubeAxisCurves are four edge curves parallel to one axis, named as in
// CubeAxisEdges
type CubeAxisCurves struct {
	E00, E10, E11, E01 Curve
}

func (ac CubeAxisCurves) at(t float64) CubeAxisEdges {
	return CubeAxisEdges{E00: ac.E00.At(t), E10: ac.E10.At(t), E11: ac.E11.At(t), E01: ac.E01.At(t)}
}

type CubeCurves struct {
	Corners CubeCorners
	X, Y, Z CubeAxisCurves
}

func (cc *CubeCurves) Boundary(x, y, z float64) CubeBoundary {
	return CubeBoundary{
		Corners: cc.Corners,
		Edges:   CubeEdges{X: cc.X.at(x), Y: cc.Y.at(y), Z: cc.Z.at(z)},
	}
}

func (cc *CubeCurves) Dim() int { return 3 }

func (cc *CubeCurves) EvalPoint(p []float64) (r Result, err error) {
	if err = checkDim(cc, p); err != nil {
		return
	}
	var vol Volume
	if vol, err = Cube(p[0], p[1], p[2], cc.Boundary(p[0], p[1], p[2])); err != nil {
		return
	}
	return volumeResult(p, vol), nil
}

// PrismCurves supplies prism boundary data. The gradient is reported in the
// Cartesian frame of the reference nodes (NodeX, NodeY) unless Barycentric
// is set.
type PrismCurves struct {
	Bottom, Top  TriangleCurves
	U, V, W      Curve
	NodeX, NodeY [3]float64
	Barycentric  bool
}

func (pc *PrismCurves) Boundary(u, v, z float64) PrismBoundary {
	return PrismBoundary{
		Bottom: pc.Bottom.Boundary(u, v),
		Top:    pc.Top.Boundary(u, v),
		Axis:   PrismAxes{U: pc.U.At(z), V: pc.V.At(z), W: pc.W.At(z)},
	}
}

func (pc *PrismCurves) Dim() int { return 3 }

func (pc *PrismCurves) EvalPoint(p []float64) (r Result, err error) {
	if err = checkDim(pc, p); err != nil {
		return
	}
	var (
		vol Volume
		b   = pc.Boundary(p[0], p[1], p[2])
	)
	if pc.Barycentric {
		vol, err = PrismBarycentric(p[0], p[1], p[2], b)
	} else {
		vol, err = Prism(p[0], p[1], p[2], b, pc.NodeX, pc.NodeY)
	}
	if err != nil {
		return
	}
	return volumeResult(p, vol), nil
}
