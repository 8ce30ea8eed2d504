package geometry2D

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var ErrDegenerateTriangle = errors.New("degenerate reference triangle")

// maxCondition bounds the Jacobian condition number accepted by Validate
const maxCondition = 1.e12

/*
Triangle holds the physical coordinates of the three reference nodes of a
straight sided triangle. Node 0 is the u vertex, node 1 the v vertex and
node 2 the w vertex, which is the origin of the barycentric map

	x = x2 + u*(x0-x2) + v*(x1-x2)
	y = y2 + u*(y0-y2) + v*(y1-y2)
*/
type Triangle struct {
	X, Y [3]float64
}

func NewTriangle(x, y [3]float64) Triangle {
	return Triangle{X: x, Y: y}
}

// Jacobian is [xu, xv]
//
//	[yu, yv]
func (tri Triangle) Jacobian() (xu, xv, yu, yv float64) {
	xu, xv = tri.X[0]-tri.X[2], tri.X[1]-tri.X[2]
	yu, yv = tri.Y[0]-tri.Y[2], tri.Y[1]-tri.Y[2]
	return
}

func (tri Triangle) JacobianMatrix() *mat.Dense {
	xu, xv, yu, yv := tri.Jacobian()
	return mat.NewDense(2, 2, []float64{xu, xv, yu, yv})
}

func (tri Triangle) Det() float64 {
	xu, xv, yu, yv := tri.Jacobian()
	return xu*yv - xv*yu
}

// InverseJacobian returns the constant partials of the barycentric
// coordinates with respect to x and y. A degenerate triangle yields
// non-finite values.
func (tri Triangle) InverseJacobian() (ux, uy, vx, vy float64) {
	var (
		xu, xv, yu, yv = tri.Jacobian()
		oodet          = 1. / (xu*yv - xv*yu)
	)
	// Inverse Jacobian is:
	// (1/(xu*yv-xv*yu)) *
	//             [ yv,-xv]
	//             [-yu, xu]
	ux, uy = yv*oodet, -xv*oodet
	vx, vy = -yu*oodet, xu*oodet
	return
}

// ToCartesian maps a barycentric point into the physical triangle
func (tri Triangle) ToCartesian(u, v float64) (x, y float64) {
	var (
		xu, xv, yu, yv = tri.Jacobian()
	)
	x = tri.X[2] + u*xu + v*xv
	y = tri.Y[2] + u*yu + v*yv
	return
}

func (tri Triangle) Area() float64 {
	return 0.5 * math.Abs(tri.Det())
}

// Validate rejects collinear, duplicate or non-finite reference nodes
func (tri Triangle) Validate() (err error) {
	for i := 0; i < 3; i++ {
		if math.IsNaN(tri.X[i]) || math.IsInf(tri.X[i], 0) ||
			math.IsNaN(tri.Y[i]) || math.IsInf(tri.Y[i], 0) {
			return fmt.Errorf("%w: node %d is not finite", ErrDegenerateTriangle, i)
		}
	}
	if tri.Det() == 0 {
		return fmt.Errorf("%w: nodes x = %v, y = %v are collinear", ErrDegenerateTriangle, tri.X, tri.Y)
	}
	if cond := mat.Cond(tri.JacobianMatrix(), 1); cond > maxCondition {
		return fmt.Errorf("%w: nodes x = %v, y = %v, jacobian condition number %g",
			ErrDegenerateTriangle, tri.X, tri.Y, cond)
	}
	return
}
