// SPDX-License-Identifier: MIT

package complexnum

import "errors"

// ErrDivisionByZero is returned by Reciprocal, Div and Tan when the divisor
// is 0 + 0i.
var ErrDivisionByZero = errors.New("complexnum: division by zero")
