package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrShapeMismatch = errors.New("field shape mismatch")

// Field is a field sample: a row-major array of arbitrary shape. A Field
// with an empty Shape and one datum is a scalar and broadcasts against any
// other shape.
type Field struct {
	Shape []int
	Data  []float64
}

func NewField(shape []int, dataO ...[]float64) (F Field) {
	var (
		N = shapeSize(shape)
	)
	F.Shape = append([]int{}, shape...)
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			err := fmt.Errorf("mismatch in allocation: NewField shape = %v, len(data[0]) = %v", shape, len(dataO[0]))
			panic(err)
		}
		F.Data = dataO[0]
	} else {
		F.Data = make([]float64, N)
	}
	return
}

func NewScalar(val float64) Field {
	return Field{Shape: []int{}, Data: []float64{val}}
}

func NewFieldConst(shape []int, val float64) (F Field) {
	F = NewField(shape)
	for i := range F.Data {
		F.Data[i] = val
	}
	return
}

// NewFieldFromDense copies a gonum matrix into a rank-2 Field
func NewFieldFromDense(M mat.Matrix) (F Field) {
	var (
		nr, nc = M.Dims()
	)
	F = NewField([]int{nr, nc})
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			F.Data[j+nc*i] = M.At(i, j)
		}
	}
	return
}

func shapeSize(shape []int) (N int) {
	N = 1
	for _, n := range shape {
		if n < 0 {
			panic(fmt.Errorf("negative dimension in shape %v", shape))
		}
		N *= n
	}
	return
}

func (f Field) Size() int      { return len(f.Data) }
func (f Field) Rank() int      { return len(f.Shape) }
func (f Field) IsScalar() bool { return len(f.Shape) == 0 && len(f.Data) == 1 }

func (f Field) Copy() (R Field) { // Does not change receiver
	R = NewField(f.Shape)
	copy(R.Data, f.Data)
	return
}

// At indexes the field in row-major order, one index per dimension
func (f Field) At(idx ...int) float64 {
	if len(idx) != len(f.Shape) {
		panic(fmt.Errorf("index %v does not match rank of shape %v", idx, f.Shape))
	}
	var ind int
	for i, n := range f.Shape {
		if idx[i] < 0 || idx[i] >= n {
			panic(fmt.Errorf("index %v out of bounds for shape %v", idx, f.Shape))
		}
		ind = ind*n + idx[i]
	}
	return f.Data[ind]
}

// Dense returns a copy of a field of rank 2 or less as a gonum matrix.
// Scalars become 1x1 and vectors become columns.
func (f Field) Dense() (M *mat.Dense) {
	var (
		data = append([]float64{}, f.Data...)
	)
	switch f.Rank() {
	case 0:
		M = mat.NewDense(1, 1, data)
	case 1:
		M = mat.NewDense(f.Shape[0], 1, data)
	case 2:
		M = mat.NewDense(f.Shape[0], f.Shape[1], data)
	default:
		panic(fmt.Errorf("unable to convert field of shape %v to a matrix", f.Shape))
	}
	return
}

func (f Field) IsFinite() bool {
	for _, val := range f.Data {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return false
		}
	}
	return true
}

func (f Field) SameShape(g Field) bool {
	if len(f.Shape) != len(g.Shape) {
		return false
	}
	for i := range f.Shape {
		if f.Shape[i] != g.Shape[i] {
			return false
		}
	}
	return len(f.Data) == len(g.Data)
}

// EqualApprox compares shape and then each element within an absolute or
// relative tolerance
func (f Field) EqualApprox(g Field, tol float64) bool {
	return f.SameShape(g) && floats.EqualApprox(f.Data, g.Data, tol)
}

func (f Field) String() string {
	if f.IsScalar() {
		return fmt.Sprintf("%g", f.Data[0])
	}
	return fmt.Sprintf("%v%v", f.Shape, f.Data)
}

// Compatible returns the shape that results from combining fields, or an
// error wrapping ErrShapeMismatch. Scalars broadcast; all other fields must
// share one shape.
func Compatible(fields ...Field) (shape []int, err error) {
	var (
		ref   = -1
		found bool
	)
	for i, f := range fields {
		if len(f.Data) == 0 || len(f.Data) != shapeSize(f.Shape) {
			err = fmt.Errorf("%w: operand %d is empty or malformed, shape %v with %d values",
				ErrShapeMismatch, i, f.Shape, len(f.Data))
			return
		}
		if f.IsScalar() {
			continue
		}
		if !found {
			ref, found = i, true
			continue
		}
		if !f.SameShape(fields[ref]) {
			err = fmt.Errorf("%w: operand %d has shape %v, operand %d has shape %v",
				ErrShapeMismatch, ref, fields[ref].Shape, i, f.Shape)
			return
		}
	}
	if found {
		shape = append([]int{}, fields[ref].Shape...)
	} else {
		shape = []int{}
	}
	return
}

// Term is one weighted operand of Combine
type Term struct {
	W float64
	F Field
}

func Wt(w float64, F Field) Term { return Term{W: w, F: F} }

// Combine returns Σ w_i*F_i. Incompatible operands are a programming error
// and panic; callers validate with Compatible first.
func Combine(terms ...Term) (R Field) {
	if len(terms) == 0 {
		panic("Combine called with no terms")
	}
	var (
		fields = make([]Field, len(terms))
	)
	for i, t := range terms {
		fields[i] = t.F
	}
	shape, err := Compatible(fields...)
	if err != nil {
		panic(err)
	}
	R = NewField(shape)
	for _, t := range terms {
		if t.F.IsScalar() {
			floats.AddConst(t.W*t.F.Data[0], R.Data)
		} else {
			floats.AddScaled(R.Data, t.W, t.F.Data)
		}
	}
	return
}

// Chainable arithmetic, none of which changes the receiver
func (f Field) Add(g Field) Field     { return Combine(Wt(1, f), Wt(1, g)) }
func (f Field) Sub(g Field) Field     { return Combine(Wt(1, f), Wt(-1, g)) }
func (f Field) Scale(a float64) Field { return Combine(Wt(a, f)) }

// ZerosLike returns a zero field with the shape of f
func ZerosLike(f Field) Field { return NewField(f.Shape) }
