package types

import (
	"fmt"
	"strings"
)

// DomainType names the reference domain of a Coons patch
type DomainType uint8

const (
	Domain_None DomainType = iota
	Domain_Square
	Domain_Triangle
	Domain_Cube
	Domain_Prism
)

var DomainNameMap = map[string]DomainType{
	"square":   Domain_Square,
	"quad":     Domain_Square,
	"triangle": Domain_Triangle,
	"tri":      Domain_Triangle,
	"cube":     Domain_Cube,
	"hex":      Domain_Cube,
	"prism":    Domain_Prism,
	"wedge":    Domain_Prism,
}

var domainNames = [...]string{"None", "Square", "Triangle", "Cube", "Prism"}

func NewDomainType(label string) (dt DomainType) {
	var (
		ok bool
	)
	if dt, ok = DomainNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		dt = Domain_None
	}
	return
}

func (dt DomainType) String() string {
	if int(dt) < len(domainNames) {
		return domainNames[dt]
	}
	return fmt.Sprintf("DomainType(%d)", dt)
}

// Dim is the number of parametric coordinates of a query point
func (dt DomainType) Dim() int {
	switch dt {
	case Domain_Square, Domain_Triangle:
		return 2
	case Domain_Cube, Domain_Prism:
		return 3
	}
	return 0
}

func (dt DomainType) NumCorners() int {
	switch dt {
	case Domain_Square:
		return 4
	case Domain_Triangle:
		return 3
	case Domain_Cube:
		return 8
	case Domain_Prism:
		return 6
	}
	return 0
}

// IsSimplicial is true for domains parametrized by barycentric coordinates,
// where queries must lie in the open simplex
func (dt DomainType) IsSimplicial() bool {
	return dt == Domain_Triangle || dt == Domain_Prism
}

// InDomain reports whether a query point lies in the closed parametric
// domain, or the open simplex for barycentric domains
func (dt DomainType) InDomain(p []float64) bool {
	if len(p) != dt.Dim() || dt == Domain_None {
		return false
	}
	unit := func(x float64) bool { return x >= 0 && x <= 1 }
	switch dt {
	case Domain_Square, Domain_Cube:
		for _, x := range p {
			if !unit(x) {
				return false
			}
		}
		return true
	case Domain_Prism:
		if !unit(p[2]) {
			return false
		}
		fallthrough
	case Domain_Triangle:
		return p[0] > 0 && p[1] > 0 && p[0]+p[1] < 1
	}
	return false
}
