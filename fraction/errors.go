// SPDX-License-Identifier: MIT

package fraction

import "errors"

// ErrZeroDenominator is returned when a fraction would be built with a zero
// denominator: New(n, 0), the reciprocal of zero and division by zero.
var ErrZeroDenominator = errors.New("fraction: denominator can not be zero")
