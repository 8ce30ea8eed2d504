package InputParameters

import (
	"fmt"

	"github.com/notargets/coons/coons"
	"github.com/notargets/coons/types"
	"github.com/notargets/coons/utils"
)

func (job *PatchJob) field(data []float64) utils.Field {
	return utils.NewField(job.Shape, append([]float64{}, data...))
}

func (job *PatchJob) corner(name string) utils.Field {
	return job.field(job.Corners[name])
}

// curve builds the named edge curve from its coefficients, or the line
// between its corners
func (job *PatchJob) curve(dt types.DomainType, name string) (c coons.Curve, err error) {
	var (
		p *coons.Polynomial
	)
	if coeffs, ok := job.Curves[name]; ok {
		fields := make([]utils.Field, len(coeffs))
		for i, data := range coeffs {
			fields[i] = job.field(data)
		}
		p, err = coons.NewPolynomial(fields...)
	} else {
		ends, ok := EdgeEnds(dt, name)
		if !ok {
			return nil, fmt.Errorf("%s: no edge named %s", dt, name)
		}
		p, err = coons.NewLine(job.corner(ends[0]), job.corner(ends[1]))
	}
	if err != nil {
		err = fmt.Errorf("curve %s: %w", name, err)
		return
	}
	return p, nil
}

// Evaluator validates the job and assembles the boundary provider of its
// domain
func (job *PatchJob) Evaluator() (ev coons.Evaluator, err error) {
	if err = job.Validate(); err != nil {
		return
	}
	var (
		dt     = job.DomainType()
		curves = make(map[string]coons.Curve)
	)
	for _, name := range EdgeNames(dt) {
		if curves[name], err = job.curve(dt, name); err != nil {
			return
		}
	}
	switch dt {
	case types.Domain_Square:
		ev = &coons.SquareCurves{
			Corners: coons.SquareCorners{
				C00: job.corner("C00"), C10: job.corner("C10"), C11: job.corner("C11"), C01: job.corner("C01"),
			},
			Y0: curves["Y0"], X1: curves["X1"], Y1: curves["Y1"], X0: curves["X0"],
		}
	case types.Domain_Triangle:
		tc := job.triangleCurves(curves, "")
		ev = &tc
	case types.Domain_Cube:
		axis := func(a string) coons.CubeAxisCurves {
			return coons.CubeAxisCurves{
				E00: curves[a+"00"], E10: curves[a+"10"], E11: curves[a+"11"], E01: curves[a+"01"],
			}
		}
		ev = &coons.CubeCurves{
			Corners: coons.CubeCorners{
				C000: job.corner("C000"), C100: job.corner("C100"), C110: job.corner("C110"), C010: job.corner("C010"),
				C001: job.corner("C001"), C101: job.corner("C101"), C111: job.corner("C111"), C011: job.corner("C011"),
			},
			X: axis("X"), Y: axis("Y"), Z: axis("Z"),
		}
	case types.Domain_Prism:
		tri, _ := job.Triangle()
		ev = &coons.PrismCurves{
			Bottom:      job.triangleCurves(curves, "0"),
			Top:         job.triangleCurves(curves, "1"),
			U:           curves["AU"],
			V:           curves["AV"],
			W:           curves["AW"],
			NodeX:       tri.X,
			NodeY:       tri.Y,
			Barycentric: job.Barycentric,
		}
	}
	return
}

func (job *PatchJob) triangleCurves(curves map[string]coons.Curve, level string) coons.TriangleCurves {
	return coons.TriangleCurves{
		Corners: coons.TriangleCorners{
			U: job.corner("U" + level), V: job.corner("V" + level), W: job.corner("W" + level),
		},
		WU: curves["WU"+level], UV: curves["UV"+level], VU: curves["VU"+level],
		WV: curves["WV"+level], VW: curves["VW"+level], UW: curves["UW"+level],
	}
}
