package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikolasavic/blockies/internal/blockie"
	"github.com/nikolasavic/blockies/internal/palette"
)

// randSeedFn draws a seed below 10^16 as hex. Injectable for tests.
var randSeedFn = func() string {
	return fmt.Sprintf("0x%x", rand.Int64N(1e16))
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	preset, err := a.resolvePreset()
	if err != nil {
		return err
	}
	opts, err := a.renderOptions()
	if err != nil {
		return err
	}

	if a.testMode {
		return a.renderVanity(cmd, preset, opts)
	}

	var seed string
	if a.random {
		seed = randSeedFn()
	} else {
		seed = strings.ToLower(args[0])
	}

	lines, err := blockie.Render(seed, preset, opts)
	if err != nil {
		return err
	}
	writeLines(a.stdout, lines)
	fmt.Fprintln(a.stdout, seed)
	return nil
}

func (a *app) renderVanity(cmd *cobra.Command, preset blockie.Preset, opts blockie.Options) error {
	seeds := a.cfg.Vanity
	a.logger.Debug("rendering vanity seeds", zap.Int("count", len(seeds)), zap.String("preset", string(preset)))

	all, err := blockie.RenderAll(cmd.Context(), seeds, preset, opts, runtime.GOMAXPROCS(0))
	if err != nil {
		return err
	}
	for i, lines := range all {
		writeLines(a.stdout, lines)
		fmt.Fprintln(a.stdout, seeds[i])
	}
	return nil
}

func writeLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

// renderOptions merges color flags over config overrides.
func (a *app) renderOptions() (blockie.Options, error) {
	opts := a.cfg.Options()
	opts.Logger = a.logger

	for _, f := range []struct {
		name  string
		value string
		dst   **palette.Color
	}{
		{"color", a.color, &opts.Main},
		{"bgcolor", a.bgColor, &opts.Background},
		{"spotcolor", a.spotColor, &opts.Spot},
	} {
		if f.value == "" {
			continue
		}
		c, err := parseHSL(f.value)
		if err != nil {
			return blockie.Options{}, usagef("--%s: %v", f.name, err)
		}
		*f.dst = &c
	}
	return opts, nil
}

// parseHSL parses "h,s,l" with each component a fraction in [0, 1].
func parseHSL(s string) (palette.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return palette.Color{}, fmt.Errorf("want h,s,l, got %q", s)
	}
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return palette.Color{}, fmt.Errorf("component %d: %w", i+1, err)
		}
		vals[i] = v
	}
	c := palette.Color{Hue: vals[0], Saturation: vals[1], Lightness: vals[2]}
	if err := c.Validate(); err != nil {
		return palette.Color{}, err
	}
	return c, nil
}
