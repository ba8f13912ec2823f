package core

import "fmt"

// Mary is a flat row-major table of base field values, with Len rows of Step
// elements each: the storage shape of execution-trace matrices. The buffer
// length always equals Step·Len.
type Mary struct {
	Step int
	Len  int
	Dat  []Belt
}

// NewMary allocates a zeroed table of the given shape.
func NewMary(step, length int) Mary {
	return Mary{Step: step, Len: length, Dat: make([]Belt, step*length)}
}

// MaryFromSlice wraps an existing buffer, checking the shape invariant.
func MaryFromSlice(step, length int, dat []Belt) (Mary, error) {
	if step < 0 || length < 0 || step*length != len(dat) {
		return Mary{}, fmt.Errorf("%w: mary shape %dx%d does not match buffer length %d",
			ErrPrecondition, step, length, len(dat))
	}
	return Mary{Step: step, Len: length, Dat: dat}, nil
}

// Row returns the i-th row as a sub-slice of the backing buffer.
func (m Mary) Row(i int) []Belt {
	return m.Dat[i*m.Step : (i+1)*m.Step]
}

// Transpose reinterprets each row of Step elements as Step/offset cells of
// width offset and transposes cells against the row dimension: the result has
// Step/offset rows of Len·offset elements, where result row j holds, for each
// source row i, the j-th cell of that row. Step must be divisible by offset.
func (m Mary) Transpose(offset int) (Mary, error) {
	if offset <= 0 || m.Step%offset != 0 {
		return Mary{}, fmt.Errorf("%w: step %d not divisible by transpose offset %d",
			ErrPrecondition, m.Step, offset)
	}
	out := NewMary(m.Len*offset, m.Step/offset)
	cells := m.Step / offset
	for i := 0; i < m.Len; i++ {
		for j := 0; j < cells; j++ {
			copy(out.Dat[j*out.Step+i*offset:j*out.Step+(i+1)*offset],
				m.Dat[i*m.Step+j*offset:i*m.Step+(j+1)*offset])
		}
	}
	return out, nil
}

// Weld concatenates the rows of two tables with identical step.
func (m Mary) Weld(other Mary) (Mary, error) {
	if m.Step != other.Step {
		return Mary{}, fmt.Errorf("%w: weld step mismatch %d != %d",
			ErrPrecondition, m.Step, other.Step)
	}
	out := NewMary(m.Step, m.Len+other.Len)
	copy(out.Dat, m.Dat)
	copy(out.Dat[len(m.Dat):], other.Dat)
	return out, nil
}

// Swag extracts j contiguous rows starting at row i into a fresh table. The
// bound is checked in wrap-free form: indices reach this layer straight from
// boundary samples.
func (m Mary) Swag(i, j int) (Mary, error) {
	if i < 0 || j < 0 || j > m.Len || i > m.Len-j {
		return Mary{}, fmt.Errorf("%w: %d rows from row %d out of bounds for %d rows",
			ErrPrecondition, j, i, m.Len)
	}
	out := NewMary(m.Step, j)
	copy(out.Dat, m.Dat[i*m.Step:(i+j)*m.Step])
	return out, nil
}
