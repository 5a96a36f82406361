// Package render encodes a blockie grid as ANSI truecolor text, two grid
// rows per terminal line.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nikolasavic/blockies/internal/grid"
	"github.com/nikolasavic/blockies/internal/palette"
)

const (
	// LowerHalfBlock is drawn in the foreground color for the lower pixel.
	LowerHalfBlock = "▄"
	// Reset restores the terminal's default foreground and background.
	Reset = "\033[39;49m"
)

// ErrInvalidFieldCode signals a grid cell outside the known field codes.
var ErrInvalidFieldCode = errors.New("invalid field code")

// Lookup resolves the colored field codes. Transparent always maps to black.
type Lookup struct {
	Background palette.RGB
	Main       palette.RGB
	Spot       palette.RGB
}

// Color returns the RGB for f.
func (l Lookup) Color(f grid.Field) (palette.RGB, error) {
	switch f {
	case grid.Transparent:
		return palette.Black, nil
	case grid.Background:
		return l.Background, nil
	case grid.Main:
		return l.Main, nil
	case grid.Spot:
		return l.Spot, nil
	default:
		return palette.RGB{}, fmt.Errorf("%w: %d", ErrInvalidFieldCode, int(f))
	}
}

// Cell encodes one terminal cell: upper pixel as background, lower pixel as
// a foreground half block.
func Cell(upper, lower palette.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm\033[38;2;%d;%d;%dm%s%s",
		upper[0], upper[1], upper[2], lower[0], lower[1], lower[2], LowerHalfBlock, Reset)
}

// Lines renders g one line per pair of rows, top to bottom. An odd final
// row has no partner and is not drawn.
func Lines(g *grid.Grid, lookup Lookup) ([]string, error) {
	lines := make([]string, 0, g.Size/2)
	var buf strings.Builder
	for y := 0; y+1 < g.Size; y += 2 {
		buf.Reset()
		buf.Grow(g.Size * 40)
		upperRow, lowerRow := g.Row(y), g.Row(y+1)
		for x := 0; x < g.Size; x++ {
			upper, err := lookup.Color(upperRow[x])
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", y, x, err)
			}
			lower, err := lookup.Color(lowerRow[x])
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", y+1, x, err)
			}
			buf.WriteString(Cell(upper, lower))
		}
		lines = append(lines, buf.String())
	}
	return lines, nil
}
