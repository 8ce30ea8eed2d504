package coons

import (
	"fmt"
	"sync"

	"github.com/notargets/coons/utils"
)

// Sweep evaluates independent query points over parallelDegree goroutines.
// Results keep the order of points; the error of the lowest failing point
// is returned.
func Sweep(points [][]float64, ev Evaluator, parallelDegree int) (results []Result, err error) {
	if len(points) == 0 {
		return
	}
	if parallelDegree < 1 {
		parallelDegree = 1
	}
	if parallelDegree > len(points) {
		parallelDegree = len(points)
	}
	var (
		pm   = utils.NewPartitionMap(parallelDegree, len(points))
		errs = make([]error, len(points))
		wg   = sync.WaitGroup{}
	)
	results = make([]Result, len(points))
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				results[k], errs[k] = ev.EvalPoint(points[k])
			}
		}(np)
	}
	wg.Wait()
	for k, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("point %d: %w", k, e)
		}
	}
	return
}

func linspace(n int) (t []float64) {
	if n == 1 {
		return []float64{0.5}
	}
	t = make([]float64, n)
	for i := range t {
		t[i] = float64(i) / float64(n-1)
	}
	return
}

// SquareLattice is the n by n tensor lattice on the closed unit square
func SquareLattice(n int) (points [][]float64) {
	t := linspace(n)
	for _, y := range t {
		for _, x := range t {
			points = append(points, []float64{x, y})
		}
	}
	return
}

// CubeLattice is the n³ tensor lattice on the closed unit cube
func CubeLattice(n int) (points [][]float64) {
	t := linspace(n)
	for _, z := range t {
		for _, y := range t {
			for _, x := range t {
				points = append(points, []float64{x, y, z})
			}
		}
	}
	return
}

// TriangleLattice places n(n+1)/2 points strictly inside the unit triangle,
// away from the singular vertices
func TriangleLattice(n int) (points [][]float64) {
	var (
		h = 1. / float64(n)
	)
	for j := 0; j < n; j++ {
		for i := 0; i+j < n; i++ {
			points = append(points, []float64{(float64(i) + 1./3.) * h, (float64(j) + 1./3.) * h})
		}
	}
	return
}

// PrismLattice stacks a TriangleLattice over n levels in z
func PrismLattice(n int) (points [][]float64) {
	var (
		tri = TriangleLattice(n)
	)
	for _, z := range linspace(n) {
		for _, p := range tri {
			points = append(points, []float64{p[0], p[1], z})
		}
	}
	return
}
