// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendering defaults used by (*Dense).String.
const (
	DefaultFormatWidth     = 9
	DefaultFormatPrecision = 4
)

const (
	opFormat     = "Format"
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// Format renders m as fixed-point text: one line per row, each value padded
// to width with prec fractional digits and followed by a single space.
// Every row, including the last, ends with a newline.
//
// Errors:
//   - ErrNilMatrix, ErrBadFormat (negative width or prec).
//
// Complexity:
//   - Time O(r*c), Space O(r*c*width).
func Format(m Matrix, width, prec int) (string, error) {
	if err := ValidateNotNil(m); err != nil {
		return "", matrixErrorf(opFormat, err)
	}
	if width < 0 || prec < 0 {
		return "", matrixErrorf(opFormat, ErrBadFormat)
	}

	rows, cols := m.Rows(), m.Cols()
	var (
		b    strings.Builder
		cell []byte
		i, j int
		v    float64
		err  error
	)
	b.Grow(rows * (cols*(width+1) + 1))
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return "", matrixErrorf(opFormat, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			cell = strconv.AppendFloat(cell[:0], v, 'f', prec, 64)
			for pad := width - len(cell); pad > 0; pad-- {
				b.WriteByte(' ') // right-align like %*.*f
			}
			b.Write(cell)
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String(), nil
}
