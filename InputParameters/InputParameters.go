package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/coons/geometry2D"
	"github.com/notargets/coons/types"
)

/*
PatchJob is a patch evaluation read from a YAML file. Corner values and
polynomial curve coefficients are flat row-major data of the given Shape.
An omitted edge curve is the straight line between its two corners.

	Title: "Plate"
	Domain: triangle
	Shape: [2, 2]
	Points: [[0.2, 0.3]]
	Corners: {U: [1, 0, 0, 1], V: [2, 0, 0, 2], W: [1, 1, 1, 1]}
	Curves:
	  WU: [[1, 1, 1, 1], [0, -1, -1, 0], [0, 0.5, 0.5, 0]]
*/
type PatchJob struct {
	Title       string                 `json:"Title"`
	Domain      string                 `json:"Domain"`
	Shape       []int                  `json:"Shape"`
	Points      [][]float64            `json:"Points"`
	Corners     map[string][]float64   `json:"Corners"`
	Curves      map[string][][]float64 `json:"Curves"`      // Edge name to polynomial coefficients, constant first
	NodeX       []float64              `json:"NodeX"`       // Prism reference node x coordinates, u, v then w vertex
	NodeY       []float64              `json:"NodeY"`       // and their y coordinates
	Barycentric bool                   `json:"Barycentric"` // Prism gradient in (u, v, z) instead of (x, y, z)
}

var (
	cornerNames = map[types.DomainType][]string{
		types.Domain_Square:   {"C00", "C10", "C11", "C01"},
		types.Domain_Triangle: {"U", "V", "W"},
		types.Domain_Cube:     {"C000", "C100", "C110", "C010", "C001", "C101", "C111", "C011"},
		types.Domain_Prism:    {"U0", "V0", "W0", "U1", "V1", "W1"},
	}
	// Edge name to the corners at its start and end
	edgeEnds = map[types.DomainType]map[string][2]string{
		types.Domain_Square: {
			"Y0": {"C00", "C10"}, "X1": {"C10", "C11"}, "Y1": {"C01", "C11"}, "X0": {"C00", "C01"},
		},
		types.Domain_Triangle: triangleEdgeEnds(""),
		types.Domain_Cube: {
			"X00": {"C000", "C100"}, "X10": {"C010", "C110"}, "X11": {"C011", "C111"}, "X01": {"C001", "C101"},
			"Y00": {"C000", "C010"}, "Y10": {"C100", "C110"}, "Y11": {"C101", "C111"}, "Y01": {"C001", "C011"},
			"Z00": {"C000", "C001"}, "Z10": {"C100", "C101"}, "Z11": {"C110", "C111"}, "Z01": {"C010", "C011"},
		},
		types.Domain_Prism: prismEdgeEnds(),
	}
)

func triangleEdgeEnds(level string) map[string][2]string {
	ends := make(map[string][2]string)
	for _, e := range []string{"WU", "UV", "VU", "WV", "VW", "UW"} {
		ends[e+level] = [2]string{e[0:1] + level, e[1:2] + level}
	}
	return ends
}

func prismEdgeEnds() map[string][2]string {
	ends := triangleEdgeEnds("0")
	for k, v := range triangleEdgeEnds("1") {
		ends[k] = v
	}
	for _, c := range []string{"U", "V", "W"} {
		ends["A"+c] = [2]string{c + "0", c + "1"}
	}
	return ends
}

// CornerNames lists the corner keys of a domain
func CornerNames(dt types.DomainType) []string { return cornerNames[dt] }

// EdgeNames lists the curve keys of a domain in sorted order
func EdgeNames(dt types.DomainType) (names []string) {
	for name := range edgeEnds[dt] {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// EdgeEnds returns the corner keys at the start and end of an edge
func EdgeEnds(dt types.DomainType, edge string) (ends [2]string, ok bool) {
	ends, ok = edgeEnds[dt][edge]
	return
}

func (job *PatchJob) Parse(data []byte) error {
	return yaml.Unmarshal(data, job)
}

func (job *PatchJob) DomainType() types.DomainType {
	return types.NewDomainType(job.Domain)
}

func (job *PatchJob) Size() (N int) {
	N = 1
	for _, n := range job.Shape {
		N *= n
	}
	return
}

// Validate checks arity and ranges so that every query in the job is inside
// its domain and every datum has the field's size
func (job *PatchJob) Validate() (err error) {
	var (
		dt = job.DomainType()
		N  = job.Size()
	)
	if dt == types.Domain_None {
		return fmt.Errorf("unknown domain %q, use one of square, triangle, cube, prism", job.Domain)
	}
	for _, n := range job.Shape {
		if n < 1 {
			return fmt.Errorf("shape %v has a non positive dimension", job.Shape)
		}
	}
	for _, name := range CornerNames(dt) {
		data, ok := job.Corners[name]
		if !ok {
			return fmt.Errorf("%s: missing corner %s", dt, name)
		}
		if len(data) != N {
			return fmt.Errorf("%s: corner %s has %d values, shape %v needs %d", dt, name, len(data), job.Shape, N)
		}
	}
	for name := range job.Corners {
		if !contains(CornerNames(dt), name) {
			return fmt.Errorf("%s: unknown corner %s", dt, name)
		}
	}
	for name, coeffs := range job.Curves {
		if _, ok := EdgeEnds(dt, name); !ok {
			return fmt.Errorf("%s: unknown curve %s, have %v", dt, name, EdgeNames(dt))
		}
		if len(coeffs) == 0 {
			return fmt.Errorf("%s: curve %s has no coefficients", dt, name)
		}
		for i, c := range coeffs {
			if len(c) != N {
				return fmt.Errorf("%s: curve %s coefficient %d has %d values, need %d", dt, name, i, len(c), N)
			}
		}
	}
	if len(job.Points) == 0 {
		return fmt.Errorf("%s: no query points", dt)
	}
	for i, p := range job.Points {
		if !dt.InDomain(p) {
			return fmt.Errorf("%s: query point %d = %v is outside the domain", dt, i, p)
		}
	}
	if dt == types.Domain_Prism {
		var tri geometry2D.Triangle
		if tri, err = job.Triangle(); err != nil {
			return
		}
		if err = tri.Validate(); err != nil {
			return
		}
	}
	return
}

// Triangle returns the prism reference nodes, the unit triangle when absent
func (job *PatchJob) Triangle() (tri geometry2D.Triangle, err error) {
	if len(job.NodeX) == 0 && len(job.NodeY) == 0 {
		return geometry2D.NewTriangle([3]float64{1, 0, 0}, [3]float64{0, 1, 0}), nil
	}
	if len(job.NodeX) != 3 || len(job.NodeY) != 3 {
		err = fmt.Errorf("need three reference nodes, have %d x and %d y values", len(job.NodeX), len(job.NodeY))
		return
	}
	copy(tri.X[:], job.NodeX)
	copy(tri.Y[:], job.NodeY)
	return
}

func (job *PatchJob) Print() {
	dt := job.DomainType()
	fmt.Printf("\"%s\"\t\t= Title\n", job.Title)
	fmt.Printf("[%s]\t\t= Domain\n", dt)
	fmt.Printf("%v\t\t\t= Shape\n", job.Shape)
	fmt.Printf("[%d]\t\t\t= Query points\n", len(job.Points))
	if dt == types.Domain_Prism {
		tri, _ := job.Triangle()
		fmt.Printf("%v %v\t= Reference nodes, barycentric gradient %v\n", tri.X, tri.Y, job.Barycentric)
	}
	for _, name := range EdgeNames(dt) {
		if coeffs, ok := job.Curves[name]; ok {
			fmt.Printf("Curves[%s] = order %d\n", name, len(coeffs)-1)
		} else {
			ends, _ := EdgeEnds(dt, name)
			fmt.Printf("Curves[%s] = line %s -> %s\n", name, ends[0], ends[1])
		}
	}
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
