// Package ident generates the 12-character base-36 identifiers used for
// orders and trades.
package ident

import "time"

const (
	alphabet = "0123456789QWERTYUIOPASDFGHJKLZXCVBNM"
	idLength = 12

	// Lehmer generator constants, modulus 2^31-1.
	lcgM = 2147483647
	lcgA = 39373
)

// Generator produces identifiers from a deterministic uniform stream.
type Generator struct {
	seed int64
}

// NewGenerator creates a generator. A zero seed draws one from the
// millisecond clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixMilli() % 1000
		if seed == 0 {
			seed = time.Now().Unix()
		}
	}
	return &Generator{seed: seed % lcgM}
}

// Next returns the next 12-character identifier.
func (g *Generator) Next() string {
	const q, r = lcgM / lcgA, lcgM % lcgA

	buf := make([]byte, idLength)
	for i := range buf {
		k := g.seed / q
		g.seed = lcgA*(g.seed-k*q) - k*r
		if g.seed < 0 {
			g.seed += lcgM
		}
		u := float64(g.seed) / float64(lcgM)
		buf[i] = alphabet[int(u*float64(len(alphabet)))]
	}
	return string(buf)
}
