package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nikolasavic/blockies/internal/blockie"
	"github.com/nikolasavic/blockies/internal/palette"
)

func (a *app) paletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette <seed>",
		Short: "Print the background, main and spot colors for a seed",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usagef("usage: blockies palette <seed>")
			}
			return nil
		},
		RunE: a.runPalette,
	}
}

func (a *app) runPalette(_ *cobra.Command, args []string) error {
	preset, err := a.resolvePreset()
	if err != nil {
		return err
	}
	opts := a.cfg.Options()
	opts.Logger = a.logger

	b, err := blockie.New(strings.ToLower(args[0]), preset, opts)
	if err != nil {
		return err
	}

	r := lipgloss.NewRenderer(a.stdout)
	label := r.NewStyle().Bold(true).Width(10)
	faint := r.NewStyle().Faint(true)

	lookup := b.Palette.Lookup()
	rows := []struct {
		name  string
		color palette.Color
		rgb   palette.RGB
	}{
		{"bgcolor", b.Palette.Background, lookup.Background},
		{"color", b.Palette.Main, lookup.Main},
		{"spotcolor", b.Palette.Spot, lookup.Spot},
	}
	for _, row := range rows {
		swatch := r.NewStyle().Background(lipgloss.Color(row.rgb.Hex())).Render("    ")
		fmt.Fprintf(a.stdout, "%s %s %s  %s\n", swatch, label.Render(row.name), row.rgb.Hex(), faint.Render(row.color.String()))
	}
	fmt.Fprintf(a.stdout, "%s color/bg %.3f  spot/bg %.3f  spot/color %.3f\n",
		label.Render("distance"),
		palette.Distance(lookup.Main, lookup.Background),
		palette.Distance(lookup.Spot, lookup.Background),
		palette.Distance(lookup.Spot, lookup.Main),
	)
	fmt.Fprintf(a.stdout, "%s %s (%s)\n", label.Render("seed"), b.Seed, b.Preset)
	return nil
}
