package prng

import (
	"crypto/sha256"
	"strings"
)

// HashStream replays the SHA-256 digest of the seed as digest[i]/256,
// cycling forever. A one-character change in the seed changes the whole
// stream, which the xorshift fold does not guarantee for seeds that share
// a long prefix.
type HashStream struct {
	digest [sha256.Size]byte
	cursor int
}

// NewHashStream hashes seed after stripping a leading "0x" and lower-casing.
func NewHashStream(seed string) *HashStream {
	seed = strings.ToLower(strings.TrimPrefix(seed, "0x"))
	return &HashStream{digest: sha256.Sum256([]byte(seed))}
}

// Draw returns the next digest byte scaled into [0, 1).
func (h *HashStream) Draw() float64 {
	v := float64(h.digest[h.cursor]) / 256
	h.cursor = (h.cursor + 1) % len(h.digest)
	return v
}
