package tholder

import (
	"fmt"
	"strconv"
	"strings"
)

// Fraction is a non-negative rational p/q, kept unreduced until String()
// needs a canonical form so that comparisons stay exact integer math.
type Fraction struct {
	Num int64
	Den int64
}

// ParseFraction accepts "p/q" or a bare integer "p" (meaning p/1).
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, ErrInvalidWeight
	}
	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || num < 0 {
		return Fraction{}, ErrInvalidWeight
	}
	if len(parts) == 1 {
		return Fraction{Num: num, Den: 1}, nil
	}
	den, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || den <= 0 {
		return Fraction{}, ErrInvalidWeight
	}
	return Fraction{Num: num, Den: den}, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// String renders the fraction reduced to lowest terms, e.g. "1/2", "1/1".
func (f Fraction) String() string {
	num, den := f.Num, f.Den
	if den == 0 {
		den = 1
	}
	if g := gcd(num, den); g > 1 {
		num, den = num/g, den/g
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// LessThanOrEqualToOne reports whether the fraction's value lies in [0, 1].
func (f Fraction) LessThanOrEqualToOne() bool {
	return f.Den > 0 && f.Num >= 0 && f.Num <= f.Den
}

// sumAtLeastOne adds fractions with exact cross-multiplied comparison
// against the value 1, avoiding any floating point.
func sumAtLeastOne(fs []Fraction) bool {
	// Reduce to a running fraction num/den, cross-multiplying on each add
	// to keep the comparison exact without risking overflow on long
	// vectors by reducing after every step.
	var num, den int64 = 0, 1
	for _, f := range fs {
		if f.Den == 0 {
			continue
		}
		num = num*f.Den + f.Num*den
		den = den * f.Den
		if g := gcd(num, den); g > 1 {
			num, den = num/g, den/g
		}
	}
	return den > 0 && num >= den
}
