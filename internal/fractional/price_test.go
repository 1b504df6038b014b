package fractional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownValues(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100-000", 100.0},
		{"99-16+", 99.515625},
		{"99-317", 99.99609375},
		{"0-001", 1.0 / 256.0},
		{"99-31+", 99.984375},
		{"100-00+", 100.015625},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "100", "100-0", "100-320", "100-008", "100-00x", "-010", "100-0+0"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrMalformed, in)
	}
}

func TestFormatKnownValues(t *testing.T) {
	assert.Equal(t, "100-000", Format(100.0))
	assert.Equal(t, "99-16+", Format(99.515625))
	assert.Equal(t, "0-002", Format(1.0/128.0))
	assert.Equal(t, "99-31+", Format(99.984375))
}

func TestRoundTripGrid(t *testing.T) {
	// Every multiple of 1/256 over a few whole points must survive the
	// text round trip exactly.
	for n := 0; n <= 3*256; n++ {
		p := float64(n) / 256.0
		got, err := Parse(Format(p))
		require.NoError(t, err)
		require.Equal(t, p, got, "n=%d", n)
	}
}

func TestRoundTripFromText(t *testing.T) {
	for _, s := range []string{"99-16+", "100-000", "42-310", "7-007"} {
		p, err := Parse(s)
		require.NoError(t, err)
		require.Equal(t, s, Format(p))
	}
}
