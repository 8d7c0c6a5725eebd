// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"strconv"
)

// Fraction is an integer fraction num/den. The zero value is 0/1.
type Fraction struct {
	num int64
	den int64 // 0 only in the zero value, read through d()
}

// New returns num/den exactly as given (no reduction).
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("New(%d, %d): %w", num, den, ErrZeroDenominator)
	}

	return Fraction{num: num, den: den}, nil
}

// MustNew is like New but panics on a zero denominator.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return f
}

// FromInt returns x/1.
func FromInt(x int64) Fraction { return Fraction{num: x, den: 1} }

// Num returns the numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the denominator.
func (f Fraction) Den() int64 { return f.d() }

func (f Fraction) d() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

// Float64 returns the nearest float64 to num/den.
func (f Fraction) Float64() float64 { return float64(f.num) / float64(f.d()) }

// String renders the stored terms as "num/den".
func (f Fraction) String() string {
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.d(), 10)
}

// Reduce returns f in lowest terms with a positive denominator.
// Terms are int64 and overflow silently: a numerator of math.MinInt64 over a
// negative denominator can not be negated and comes back with the wrong sign.
func (f Fraction) Reduce() Fraction {
	return reduced(f.num, f.d())
}

// reduced builds n/d in lowest terms; d must be non-zero.
func reduced(n, d int64) Fraction {
	g := gcd(n, d)
	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}

	return Fraction{num: n, den: d}
}

// gcd is Euclid's algorithm on magnitudes. gcd(0, d) == |d|.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Add returns f + b, reduced.
// The cross products num·den are not checked for int64 overflow.
func (f Fraction) Add(b Fraction) Fraction {
	fd, bd := f.d(), b.d()

	return reduced(f.num*bd+fd*b.num, fd*bd)
}

// Sub returns f - b, reduced. Overflow behaves as in Add.
func (f Fraction) Sub(b Fraction) Fraction {
	fd, bd := f.d(), b.d()

	return reduced(f.num*bd-fd*b.num, fd*bd)
}

// Mul returns f · b, reduced.
// The products of the terms are not checked for int64 overflow.
func (f Fraction) Mul(b Fraction) Fraction {
	return reduced(f.num*b.num, f.d()*b.d())
}

// MulInt returns f · x, reduced. Overflow behaves as in Mul.
func (f Fraction) MulInt(x int64) Fraction {
	return reduced(f.num*x, f.d())
}

// Neg returns -f with the same denominator.
func (f Fraction) Neg() Fraction { return Fraction{num: -f.num, den: f.d()} }

// Reciprocal returns den/num, reduced.
// Returns ErrZeroDenominator if f is zero.
func (f Fraction) Reciprocal() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fmt.Errorf("Reciprocal(%s): %w", f, ErrZeroDenominator)
	}

	return reduced(f.d(), f.num), nil
}

// Div returns f / b as f · b⁻¹, reduced.
// Returns ErrZeroDenominator if b is zero.
func (f Fraction) Div(b Fraction) (Fraction, error) {
	r, err := b.Reciprocal()
	if err != nil {
		return Fraction{}, fmt.Errorf("Div: %w", err)
	}

	return f.Mul(r), nil
}

// Equal reports whether f and b denote the same rational number,
// so 1/2 equals 2/4 and -1/2 equals 1/-2.
func (f Fraction) Equal(b Fraction) bool {
	return f.Reduce() == b.Reduce()
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than b.
func (f Fraction) Cmp(b Fraction) int {
	x, y := f.Reduce(), b.Reduce()
	l, r := x.num*y.den, y.num*x.den
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
