package tholder

import (
	"strconv"
)

// Tholder represents either a numeric threshold (a plain signer count) or a
// weighted threshold (one rational weight per key), per spec §4.3.
type Tholder struct {
	weighted bool
	numeric  uint64
	weights  []Fraction
}

// NewNumeric builds a numeric Tholder directly from a count.
func NewNumeric(t uint64) *Tholder {
	return &Tholder{numeric: t}
}

// ParseNumeric accepts a native integer or a hex string (the form events
// store thresholds in) and returns a numeric Tholder. A string of decimal
// digits is read as hex, so "10" yields 16.
func ParseNumeric(value any) (*Tholder, error) {
	switch v := value.(type) {
	case int:
		if v < 0 {
			return nil, ErrThresholdNegative
		}
		return NewNumeric(uint64(v)), nil
	case uint64:
		return NewNumeric(v), nil
	case string:
		if v == "" {
			return nil, ErrInvalidNumeric
		}
		// Events always carry numeric thresholds as hex, so that parse runs
		// first. Every string the decimal parse accepts is also valid hex,
		// so the decimal parse never succeeds where the hex parse failed.
		if n, err := strconv.ParseUint(v, 16, 64); err == nil {
			return NewNumeric(n), nil
		}
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return NewNumeric(n), nil
		}
		return nil, ErrInvalidNumeric
	default:
		return nil, ErrInvalidNumeric
	}
}

// NewWeighted builds a weighted Tholder from a parsed fraction vector.
func NewWeighted(weights []Fraction) (*Tholder, error) {
	for _, w := range weights {
		if !w.LessThanOrEqualToOne() {
			return nil, ErrInvalidWeight
		}
	}
	return &Tholder{weighted: true, weights: weights}, nil
}

// ParseWeighted accepts the wire forms seen in practice: a vector of
// fraction strings ("1/2") or bare-integer strings ("1" meaning 1/1), per
// the Open Question decision that both forms are accepted on input.
func ParseWeighted(values []string) (*Tholder, error) {
	weights := make([]Fraction, 0, len(values))
	for _, v := range values {
		f, err := ParseFraction(v)
		if err != nil {
			return nil, err
		}
		weights = append(weights, f)
	}
	return NewWeighted(weights)
}

// IsWeighted reports whether this is a weighted (vs numeric) threshold.
func (t *Tholder) IsWeighted() bool { return t.weighted }

// Numeric returns the numeric threshold value; only meaningful when
// !IsWeighted().
func (t *Tholder) Numeric() uint64 { return t.numeric }

// Weights returns the weight vector; only meaningful when IsWeighted().
func (t *Tholder) Weights() []Fraction {
	out := make([]Fraction, len(t.weights))
	copy(out, t.weights)
	return out
}

// Size returns the number of keys this threshold is meant to be validated
// against: -1 for numeric (unbounded; the caller-supplied n is what's
// checked), len(weights) for weighted.
func (t *Tholder) Size() int {
	if t.weighted {
		return len(t.weights)
	}
	return -1
}

// Hex renders a numeric threshold as lowercase hex without leading zeros,
// the stored form spec §3/§4.3 mandates.
func (t *Tholder) Hex() string {
	return strconv.FormatUint(t.numeric, 16)
}

// WeightStrings renders a weighted threshold as its canonical
// vector-of-fraction-strings output form.
func (t *Tholder) WeightStrings() []string {
	out := make([]string, len(t.weights))
	for i, w := range t.weights {
		out[i] = w.String()
	}
	return out
}

// Validate checks the threshold against a key count n, per spec §4.3: for
// numeric, 0 <= t <= n (t == 0 only legal when n == 0, i.e. a "next"
// threshold with no next keys); for weighted, len(weights) must equal n
// and every weight must be in [0,1] with a positive denominator.
func (t *Tholder) Validate(n int) error {
	if t.weighted {
		if len(t.weights) != n {
			return ErrLengthMismatch
		}
		for _, w := range t.weights {
			if !w.LessThanOrEqualToOne() {
				return ErrInvalidWeight
			}
		}
		return nil
	}
	if t.numeric == 0 && n != 0 {
		return ErrThresholdNegative
	}
	if int(t.numeric) > n {
		return ErrThresholdExceedsN
	}
	return nil
}

// Satisfied reports whether the given set of signer indices (into the
// corresponding key vector) satisfies the threshold.
func (t *Tholder) Satisfied(indices []int) bool {
	if t.weighted {
		seen := make(map[int]bool, len(indices))
		var fs []Fraction
		for _, i := range indices {
			if seen[i] || i < 0 || i >= len(t.weights) {
				continue
			}
			seen[i] = true
			fs = append(fs, t.weights[i])
		}
		return sumAtLeastOne(fs)
	}

	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		seen[i] = true
	}
	return uint64(len(seen)) >= t.numeric
}

// DefaultCurrent returns the default current-key threshold for n keys:
// ceil(n/2), clamped to at least 1 for n >= 1.
func DefaultCurrent(n int) *Tholder {
	if n <= 0 {
		return NewNumeric(0)
	}
	t := (n + 1) / 2
	if t < 1 {
		t = 1
	}
	return NewNumeric(uint64(t))
}

// DefaultNext returns the default next-key threshold for n next keys:
// ceil(n/2), which is 0 when there are no next keys.
func DefaultNext(n int) *Tholder {
	if n <= 0 {
		return NewNumeric(0)
	}
	return NewNumeric(uint64((n + 1) / 2))
}
