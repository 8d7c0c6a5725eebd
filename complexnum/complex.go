// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"math"
	"strconv"
)

// Complex is the value re + im·i. The zero value is 0.
type Complex struct {
	re, im float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{re: re, im: im} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{re: real(z), im: imag(z)} }

// Complex128 converts c to the builtin type.
func (c Complex) Complex128() complex128 { return complex(c.re, c.im) }

// Real returns the real part.
func (c Complex) Real() float64 { return c.re }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return c.im }

// Abs returns the modulus |c|, computed with math.Hypot.
func (c Complex) Abs() float64 { return math.Hypot(c.re, c.im) }

// Phase returns the argument of c in (-π, π].
func (c Complex) Phase() float64 { return math.Atan2(c.im, c.re) }

// Add returns c + b.
func (c Complex) Add(b Complex) Complex { return Complex{c.re + b.re, c.im + b.im} }

// Sub returns c - b.
func (c Complex) Sub(b Complex) Complex { return Complex{c.re - b.re, c.im - b.im} }

// Mul returns c · b.
func (c Complex) Mul(b Complex) Complex {
	return Complex{
		re: c.re*b.re - c.im*b.im,
		im: c.re*b.im + c.im*b.re,
	}
}

// Scale returns x · c for a real x.
func (c Complex) Scale(x float64) Complex { return Complex{x * c.re, x * c.im} }

// Conjugate returns re - im·i.
func (c Complex) Conjugate() Complex { return Complex{c.re, -c.im} }

// Reciprocal returns 1/c.
// Returns ErrDivisionByZero if c is zero.
func (c Complex) Reciprocal() (Complex, error) {
	n := c.re*c.re + c.im*c.im
	if n == 0 {
		return Complex{}, fmt.Errorf("Reciprocal: %w", ErrDivisionByZero)
	}

	return Complex{c.re / n, -c.im / n}, nil
}

// Div returns c / b as c · b⁻¹.
// Returns ErrDivisionByZero if b is zero.
func (c Complex) Div(b Complex) (Complex, error) {
	r, err := b.Reciprocal()
	if err != nil {
		return Complex{}, fmt.Errorf("Div: %w", err)
	}

	return c.Mul(r), nil
}

// Exp returns e^c = e^re·(cos im + i·sin im).
func (c Complex) Exp() Complex {
	e := math.Exp(c.re)

	return Complex{e * math.Cos(c.im), e * math.Sin(c.im)}
}

// Sin returns sin(c).
func (c Complex) Sin() Complex {
	return Complex{
		re: math.Sin(c.re) * math.Cosh(c.im),
		im: math.Cos(c.re) * math.Sinh(c.im),
	}
}

// Cos returns cos(c).
func (c Complex) Cos() Complex {
	return Complex{
		re: math.Cos(c.re) * math.Cosh(c.im),
		im: -math.Sin(c.re) * math.Sinh(c.im),
	}
}

// Tan returns sin(c)/cos(c).
// Returns ErrDivisionByZero when cos(c) evaluates to exactly zero.
func (c Complex) Tan() (Complex, error) {
	t, err := c.Sin().Div(c.Cos())
	if err != nil {
		return Complex{}, fmt.Errorf("Tan: %w", err)
	}

	return t, nil
}

// String renders c as "re", "imi", "re - |im|i" or "re + imi", dropping the
// zero part. Components use the shortest 'g' representation.
func (c Complex) String() string {
	switch {
	case c.im == 0:
		return ftoa(c.re)
	case c.re == 0:
		return ftoa(c.im) + "i"
	case c.im < 0:
		return ftoa(c.re) + " - " + ftoa(-c.im) + "i"
	default:
		return ftoa(c.re) + " + " + ftoa(c.im) + "i"
	}
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
