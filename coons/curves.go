package coons

import (
	"fmt"

	"github.com/notargets/coons/utils"
)

// Curve supplies an edge curve sample at a parameter t in [0,1]
type Curve interface {
	At(t float64) Sample
}

// Polynomial represents a field valued polynomial in the monomial basis:
// P(t) = a₀ + a₁ t + a₂ t² + … + aₘ₋₁ t^(M-1).
type Polynomial struct {
	Coeffs []utils.Field // Coefficients [a₀, a₁, …, aₘ₋₁]
}

func NewPolynomial(coeffs ...utils.Field) (p *Polynomial, err error) {
	if len(coeffs) == 0 {
		err = fmt.Errorf("polynomial needs at least one coefficient")
		return
	}
	if _, err = utils.Compatible(coeffs...); err != nil {
		err = fmt.Errorf("polynomial coefficients: %w", err)
		return
	}
	p = &Polynomial{Coeffs: coeffs}
	return
}

// NewLine is the straight curve from a at t=0 to b at t=1
func NewLine(a, b utils.Field) (p *Polynomial, err error) {
	if _, err = utils.Compatible(a, b); err != nil {
		err = fmt.Errorf("line end points: %w", err)
		return
	}
	return NewPolynomial(a, b.Sub(a))
}

// At returns P(t) and P'(t)
func (p *Polynomial) At(t float64) (s Sample) {
	var (
		M     = len(p.Coeffs)
		value = make([]utils.Term, M)
		slope = make([]utils.Term, M)
		tpow  = 1.0
	)
	slope[0] = utils.Wt(0, p.Coeffs[0])
	for j := 0; j < M; j++ {
		value[j] = utils.Wt(tpow, p.Coeffs[j])
		if j+1 < M {
			slope[j+1] = utils.Wt(float64(j+1)*tpow, p.Coeffs[j+1])
		}
		tpow *= t
	}
	s.Value, s.Slope = utils.Combine(value...), utils.Combine(slope...)
	return
}

func (p *Polynomial) Order() int { return len(p.Coeffs) - 1 }

// Constant is a curve with one value and zero slope
type Constant struct {
	Value utils.Field
}

func (c Constant) At(t float64) Sample {
	return Sample{Value: c.Value, Slope: utils.ZerosLike(c.Value)}
}
