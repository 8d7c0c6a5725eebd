// Package fraction implements exact integer fractions as immutable values.
//
// A Fraction holds an int64 numerator and a non-zero int64 denominator. The
// zero value is 0/1 and ready to use. Constructors keep the terms as given;
// arithmetic results are always reduced to lowest terms with a positive
// denominator.
//
//	half := fraction.MustNew(1, 2)
//	third := fraction.MustNew(1, 3)
//	fmt.Println(half.Add(third)) // 5/6
//
// Overflow of the int64 terms is not detected.
package fraction
