package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/schemagen/schemagen/pkg/schema"
)

// alphanumeric is the 62-symbol set sampled for string generation.
const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// integer generates a uniform int64 in [minimum, maximum], both inclusive.
// Bounds default to the full int64 range when absent. Fractional bounds are
// tightened toward the interior of the interval.
func (g *Generator) integer(s *schema.Schema) (any, error) {
	lo := int64(math.MinInt64)
	hi := int64(math.MaxInt64)
	if s.Minimum != nil {
		lo = clampToInt64(math.Ceil(*s.Minimum))
	}
	if s.Maximum != nil {
		hi = clampToInt64(math.Floor(*s.Maximum))
	}
	if lo > hi {
		return nil, &ConstraintError{
			Message: fmt.Sprintf("no integers between %v and %v", *s.Minimum, *s.Maximum),
		}
	}

	// span wraps to 0 on the full int64 range; uint64n treats that as the
	// full uint64 range. Two's complement addition keeps the result exact
	// even when the interval crosses zero.
	span := uint64(hi) - uint64(lo) + 1
	return lo + int64(g.uint64n(span)), nil
}

// number generates a uniform float64 in [minimum, maximum). The upper bound
// is exclusive; a degenerate interval (minimum == maximum) yields that value.
func (g *Generator) number(s *schema.Schema) (any, error) {
	lo := float64(DefaultNumberMin)
	hi := float64(DefaultNumberMax)
	if s.Minimum != nil {
		lo = *s.Minimum
	}
	if s.Maximum != nil {
		hi = *s.Maximum
	}
	if lo > hi {
		return nil, &ConstraintError{
			Message: fmt.Sprintf("minimum %v greater than maximum %v", lo, hi),
		}
	}
	if lo == hi {
		return lo, nil
	}
	return lo + g.rng.Float64()*(hi-lo), nil
}

// text generates a string whose length is uniform in [minLength, maxLength]
// with every character drawn independently from the alphanumeric set.
// maxLength defaults to minLength+20.
func (g *Generator) text(s *schema.Schema) (any, error) {
	minLen := 0
	if s.MinLength != nil {
		minLen = *s.MinLength
	}
	maxLen := minLen + DefaultStringSpread
	if s.MaxLength != nil {
		maxLen = *s.MaxLength
	}
	if minLen < 0 || maxLen < minLen {
		return nil, &ConstraintError{
			Message: fmt.Sprintf("invalid string length bounds [%d, %d]", minLen, maxLen),
		}
	}

	length := minLen + g.rng.Intn(maxLen-minLen+1)
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(alphanumeric[g.rng.Intn(len(alphanumeric))])
	}
	return b.String(), nil
}

// clampToInt64 converts a float bound to int64, saturating at the range ends
// so oversized schema bounds behave like the defaults.
func clampToInt64(f float64) int64 {
	if f <= math.MinInt64 {
		return math.MinInt64
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(f)
}
