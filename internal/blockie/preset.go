package blockie

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikolasavic/blockies/internal/grid"
	"github.com/nikolasavic/blockies/internal/prng"
)

// Preset names a fixed combination of size, random source and layout.
type Preset string

const (
	V1 Preset = "v1" // 8x8, xorshift, square mirror
	V2 Preset = "v2" // 10x10, hash stream, diamond mirror

	DefaultPreset = V1
)

// ErrUnknownPreset is returned for preset names other than v1 and v2.
var ErrUnknownPreset = errors.New("unknown preset")

// Spec is what a preset fixes.
type Spec struct {
	Size   int
	Source prng.Kind
	Layout grid.Layout
}

var presets = map[Preset]Spec{
	V1: {Size: 8, Source: prng.KindXorshift, Layout: grid.LayoutSquare},
	V2: {Size: 10, Source: prng.KindHashStream, Layout: grid.LayoutDiamond},
}

// Presets lists the known presets in order.
func Presets() []Preset {
	return []Preset{V1, V2}
}

// ParsePreset accepts a preset name in any case.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: %q (want v1 or v2)", ErrUnknownPreset, s)
	}
	return p, nil
}

// Spec returns the parameters for p.
func (p Preset) Spec() (Spec, error) {
	spec, ok := presets[p]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
	}
	return spec, nil
}
