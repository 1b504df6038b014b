// Package fractional converts U.S. Treasury prices between the quoted
// fraction text form and decimal values.
//
// The text form is AAA-BBC: AAA whole points, BB 32nds (two digits,
// zero padded), C eighths of a 32nd with '+' meaning 4. The decimal
// value is AAA + BB/32 + C/256. Every representable value is a dyadic
// rational, so float64 holds it exactly and the round trip is lossless
// to 1/256.
package fractional

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed fraction price")

// Parse converts fraction text like "99-16+" to its decimal value.
func Parse(s string) (float64, error) {
	dash := strings.IndexByte(s, '-')
	if dash <= 0 || len(s)-dash != 4 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	whole, err := strconv.Atoi(s[:dash])
	if err != nil || whole < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	t32, err := strconv.Atoi(s[dash+1 : dash+3])
	if err != nil || t32 < 0 || t32 > 31 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	c := s[dash+3]
	if c == '+' {
		c = '4'
	}
	if c < '0' || c > '7' {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	t256 := int(c - '0')

	return float64(whole) + float64(t32)/32.0 + float64(t256)/256.0, nil
}

// Format converts a decimal price to fraction text, flooring to 1/256.
func Format(p float64) string {
	whole := int(math.Floor(p))
	rem := int(math.Floor((p - float64(whole)) * 256.0))
	t32 := rem / 8
	t8 := rem % 8

	if t8 == 4 {
		return fmt.Sprintf("%d-%02d+", whole, t32)
	}
	return fmt.Sprintf("%d-%02d%d", whole, t32, t8)
}
