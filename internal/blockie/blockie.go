// Package blockie wires a seed through a random source, palette, grid and
// renderer to produce a terminal identicon.
package blockie

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nikolasavic/blockies/internal/grid"
	"github.com/nikolasavic/blockies/internal/palette"
	"github.com/nikolasavic/blockies/internal/prng"
	"github.com/nikolasavic/blockies/internal/render"
)

// selfTest runs the xorshift conformance check once per process.
var selfTest = sync.OnceValue(prng.SelfTest)

// SelfTest reports whether the random source port reproduces its reference
// vector. The result is computed once and cached.
func SelfTest() error {
	return selfTest()
}

// Options adjusts a render. A non-nil color replaces the derived one and
// that slot draws nothing from the stream.
type Options struct {
	Background *palette.Color
	Main       *palette.Color
	Spot       *palette.Color

	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Palette is the three colors of a blockie.
type Palette struct {
	Background palette.Color
	Main       palette.Color
	Spot       palette.Color
}

// Lookup converts the palette into the renderer's field lookup.
func (p Palette) Lookup() render.Lookup {
	return render.Lookup{
		Background: p.Background.RGB(),
		Main:       p.Main.RGB(),
		Spot:       p.Spot.RGB(),
	}
}

// Blockie is a generated identicon. It is read-only once built.
type Blockie struct {
	Seed    string
	Preset  Preset
	Spec    Spec
	Palette Palette
	Grid    *grid.Grid
}

// NormalizeSeed lower-cases seed.
func NormalizeSeed(seed string) string {
	return strings.ToLower(seed)
}

// New generates the blockie for seed. Draw order is background, main, spot
// colors, then grid cells.
func New(seed string, preset Preset, opts Options) (*Blockie, error) {
	if err := SelfTest(); err != nil {
		return nil, err
	}
	spec, err := preset.Spec()
	if err != nil {
		return nil, err
	}

	seed = NormalizeSeed(seed)
	src, err := prng.New(spec.Source, seed)
	if err != nil {
		return nil, err
	}

	var pal Palette
	pal.Background = pick(opts.Background, src)
	pal.Main = pick(opts.Main, src)
	pal.Spot = pick(opts.Spot, src)

	g, err := grid.Generate(spec.Layout, spec.Size, src)
	if err != nil {
		return nil, fmt.Errorf("generate %s grid: %w", spec.Layout, err)
	}

	lookup := pal.Lookup()
	opts.logger().Debug("blockie generated",
		zap.String("seed", seed),
		zap.String("preset", string(preset)),
		zap.Stringer("source", spec.Source),
		zap.Stringer("layout", spec.Layout),
		zap.String("bgcolor", lookup.Background.Hex()),
		zap.String("color", lookup.Main.Hex()),
		zap.String("spotcolor", lookup.Spot.Hex()),
	)

	return &Blockie{Seed: seed, Preset: preset, Spec: spec, Palette: pal, Grid: g}, nil
}

func pick(override *palette.Color, src prng.Source) palette.Color {
	if override != nil {
		return *override
	}
	return palette.Derive(src)
}

// Lines renders b as terminal lines.
func (b *Blockie) Lines() ([]string, error) {
	return render.Lines(b.Grid, b.Palette.Lookup())
}

// Render generates and renders the blockie for seed. It does no I/O.
func Render(seed string, preset Preset, opts Options) ([]string, error) {
	b, err := New(seed, preset, opts)
	if err != nil {
		return nil, err
	}
	return b.Lines()
}

// RenderAll renders every seed, at most limit at a time (no limit if
// limit <= 0). Results are in the order of seeds.
func RenderAll(ctx context.Context, seeds []string, preset Preset, opts Options, limit int) ([][]string, error) {
	out := make([][]string, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := Render(seed, preset, opts)
			if err != nil {
				return fmt.Errorf("render %q: %w", seed, err)
			}
			out[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
