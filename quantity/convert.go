package quantity

import (
	"fmt"

	"github.com/roach88/uom/unit"
)

// MismatchError reports an attempt to treat a quantity as a different unit.
type MismatchError struct {
	Want unit.Unit
	Got  unit.Unit
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("quantity: unit mismatch: want %s, got %s", render(e.Want), render(e.Got))
}

func render(u unit.Unit) string {
	if u.IsDimensionless() {
		return "dimensionless"
	}
	return u.String()
}

// Convert retags q as dimension R when R and D name the same unit.
func Convert[R, D Dimension](q Quantity[D]) (Quantity[R], error) {
	want, got := UnitOf[R](), UnitOf[D]()
	if want != got {
		return Quantity[R]{}, &MismatchError{Want: want, Got: got}
	}
	return Quantity[R]{value: q.value}, nil
}

// As is like Convert but panics on a unit mismatch. A mismatch here is a
// programming error: the dimensions are fixed by the types involved.
func As[R, D Dimension](q Quantity[D]) Quantity[R] {
	r, err := Convert[R](q)
	if err != nil {
		panic(err)
	}
	return r
}
