// Package prng provides the deterministic random streams that drive blockie
// generation. Both sources are seeded from a string and are not safe for
// concurrent use: draw order is part of the output.
package prng

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedSeed is returned when a seed cannot be folded into a source.
var ErrMalformedSeed = errors.New("malformed seed")

// ErrConformance is returned when the xorshift reference vector does not
// reproduce on this platform.
var ErrConformance = errors.New("prng conformance check failed")

// Source is an endless stream of float64 draws.
type Source interface {
	Draw() float64
}

// Kind selects a Source implementation.
type Kind int

const (
	KindXorshift Kind = iota
	KindHashStream
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindXorshift:
		return "xorshift"
	case KindHashStream:
		return "hash-stream"
	default:
		return "unknown"
	}
}

// New constructs a Source of the given kind from seed.
func New(kind Kind, seed string) (Source, error) {
	if err := ValidateSeed(seed); err != nil {
		return nil, err
	}
	switch kind {
	case KindXorshift:
		return NewXorshift(seed), nil
	case KindHashStream:
		return NewHashStream(seed), nil
	default:
		return nil, fmt.Errorf("unknown source kind %d", int(kind))
	}
}

// ValidateSeed checks that seed is non-empty valid UTF-8.
func ValidateSeed(seed string) error {
	if seed == "" {
		return fmt.Errorf("%w: seed cannot be empty", ErrMalformedSeed)
	}
	if !utf8.ValidString(seed) {
		return fmt.Errorf("%w: seed is not valid UTF-8", ErrMalformedSeed)
	}
	return nil
}
