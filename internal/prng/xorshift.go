package prng

import "fmt"

// Reference vector for the xorshift stream: the first draw for this seed.
const (
	referenceSeed = "0xfadc801b8b7ff0030f36ba700359d30bb12786e4"
	referenceDraw = 0.2292061443440616
)

// drawDivisor is 2^31, not 2^32. The step below always clears the sign bit
// of the new word (it is xored with its own arithmetic shift twice), so the
// quotient still lands in [0, 1).
const drawDivisor = 1 << 31

// Xorshift is a xorshift128 stream over four signed 32-bit words, seeded by
// folding each code point of the seed into word i%4.
type Xorshift struct {
	state [4]int32
}

// NewXorshift folds seed into a fresh xorshift state.
func NewXorshift(seed string) *Xorshift {
	x := &Xorshift{}
	i := 0
	for _, r := range seed {
		s := x.state[i%4]
		x.state[i%4] = (s << 5) - s + int32(r)
		i++
	}
	return x
}

// Draw advances the stream by one step.
func (x *Xorshift) Draw() float64 {
	s := &x.state
	t := s[0] ^ (s[0] << 11)
	s[0], s[1], s[2] = s[1], s[2], s[3]
	s[3] = s[3] ^ (s[3] >> 19) ^ t ^ (t >> 8)
	return float64(uint32(s[3])) / drawDivisor
}

// SelfTest checks the xorshift port against its reference vector.
func SelfTest() error {
	if got := NewXorshift(referenceSeed).Draw(); got != referenceDraw {
		return fmt.Errorf("%w: first draw for %q = %v, want %v", ErrConformance, referenceSeed, got, referenceDraw)
	}
	return nil
}
