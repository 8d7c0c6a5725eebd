// SPDX-License-Identifier: MIT

// Command linsolve solves a dense linear system A·x = b.
//
//	linsolve -a "2,1;1,3" -b "3;5"
//	linsolve -random 50 -log-level debug
//
// With -random N a random N×N system is generated and the residual
// ‖A·x − b‖∞ is reported alongside the solution.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvnum/matrix"
)

var log = logging.Logger("linsolve")

var errBadTolerance = errors.New("pivot tolerance must be finite and >= 0")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "linsolve:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	var (
		aFlag    = fs.String("a", "", "coefficient matrix, rows separated by ';' and values by ','")
		bFlag    = fs.String("b", "", "right-hand side column, e.g. \"3;5\"")
		tol      = fs.Float64("tol", matrix.DefaultPivotTolerance, "pivot magnitude at or below which the system is singular")
		randomN  = fs.Int("random", 0, "solve a random N×N system instead of -a/-b")
		logLevel = fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level, err := logging.LevelFromString(*logLevel)
	if err != nil {
		log.Warnf("Invalid log level %q, using info", *logLevel)
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)

	if math.IsNaN(*tol) || math.IsInf(*tol, 0) || *tol < 0 {
		return fmt.Errorf("-tol %g: %w", *tol, errBadTolerance)
	}

	var a, b *matrix.Dense
	switch {
	case *randomN > 0:
		if a, err = matrix.Random(*randomN, *randomN); err != nil {
			return err
		}
		if b, err = matrix.Random(*randomN, 1); err != nil {
			return err
		}
		log.Infof("Generated random %dx%d system", *randomN, *randomN)
	case *aFlag != "" && *bFlag != "":
		if a, err = parseMatrix(*aFlag); err != nil {
			return fmt.Errorf("-a: %w", err)
		}
		if b, err = parseMatrix(*bFlag); err != nil {
			return fmt.Errorf("-b: %w", err)
		}
	default:
		fs.Usage()
		return errors.New("either -random N or both -a and -b are required")
	}
	log.Debugf("A =\n%s", a)
	log.Debugf("b =\n%s", b)

	x, err := matrix.Solve(a, b, matrix.WithPivotTolerance(*tol))
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			log.Errorf("System has no unique solution")
		}
		return err
	}
	fmt.Fprint(out, x)

	if *randomN > 0 {
		r, err := residual(a, x, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "residual: %.3e\n", r)
	}

	return nil
}
