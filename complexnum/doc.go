// Package complexnum provides Complex, an immutable complex number value with
// the usual arithmetic and the elementary functions exp, sin, cos and tan.
//
// Division by zero is reported as ErrDivisionByZero instead of producing
// Inf or NaN components. Complex128 and FromComplex128 convert to and from
// Go's builtin complex128.
package complexnum
