// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/matrix"
)

var errEmptyLiteral = errors.New("empty matrix literal")

// parseMatrix reads a literal such as "2,1;1,3": rows separated by ';',
// values within a row by ','. Whitespace around values is ignored.
func parseMatrix(s string) (*matrix.Dense, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyLiteral
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, value %d: %w", i, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	return matrix.NewDenseFrom(rows)
}

// residual returns ‖A·x − b‖∞.
func residual(a, x, b matrix.Matrix) (float64, error) {
	ax, err := matrix.Mul(a, x)
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(ax, b)
	if err != nil {
		return 0, err
	}

	return matrix.MaxAbs(diff)
}
