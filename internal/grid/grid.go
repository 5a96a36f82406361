// Package grid builds the mirrored field-code grids behind a blockie.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nikolasavic/blockies/internal/prng"
)

// Field tags a cell with its color role.
type Field int

const (
	Transparent Field = -1
	Background  Field = 0
	Main        Field = 1
	Spot        Field = 2
)

// Valid reports whether f is one of the four known codes.
func (f Field) Valid() bool {
	return f >= Transparent && f <= Spot
}

// ErrInvalidSize is returned for sizes a layout cannot build.
var ErrInvalidSize = errors.New("invalid grid size")

// Grid is a square, row-major grid of field codes.
type Grid struct {
	Size  int
	Cells []Field
}

// At returns the cell at row y, column x.
func (g *Grid) At(y, x int) Field {
	return g.Cells[y*g.Size+x]
}

// Row returns row y as a slice sharing the grid's storage.
func (g *Grid) Row(y int) []Field {
	return g.Cells[y*g.Size : (y+1)*g.Size]
}

// String draws the grid with one character per cell, for debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.Size; y++ {
		for _, f := range g.Row(y) {
			switch f {
			case Transparent:
				b.WriteByte('.')
			default:
				b.WriteByte(byte('0' + f))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Layout selects a grid generator.
type Layout int

const (
	LayoutSquare Layout = iota
	LayoutDiamond
)

// String returns a short name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutSquare:
		return "square"
	case LayoutDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// Generate builds a grid with the given layout.
func Generate(layout Layout, size int, src prng.Source) (*Grid, error) {
	switch layout {
	case LayoutSquare:
		return Square(size, src)
	case LayoutDiamond:
		return Diamond(size, src)
	default:
		return nil, fmt.Errorf("unknown layout %d", int(layout))
	}
}

// field maps one draw onto a code. Background and main each come up about
// 43% of the time, spot about 13%.
func field(src prng.Source) Field {
	f := Field(math.Floor(src.Draw() * 2.3))
	if f > Spot {
		f = Spot
	}
	return f
}

// Square draws the left ceil(size/2) cells of each row and mirrors them
// onto the right half.
func Square(size int, src prng.Source) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	dataWidth := (size + 1) / 2
	mirrorWidth := size - dataWidth

	g := &Grid{Size: size, Cells: make([]Field, 0, size*size)}
	row := make([]Field, dataWidth)
	for y := 0; y < size; y++ {
		for x := range row {
			row[x] = field(src)
		}
		g.Cells = append(g.Cells, row...)
		for x := mirrorWidth - 1; x >= 0; x-- {
			g.Cells = append(g.Cells, row[x])
		}
	}
	return g, nil
}

// RowBits returns the number of live cells in each half-row of a diamond:
// 1 at the top, size/2 across the middle, 1 at the bottom.
func RowBits(size int) []int {
	bits := make([]int, size)
	for y := range bits {
		if y < size/2 {
			bits[y] = y + 1
		} else {
			bits[y] = size - y
		}
	}
	return bits
}

// Diamond draws RowBits(size)[y] cells per row, places them against the
// vertical center line and mirrors them. Cells outside the diamond are
// Transparent. The first draw of each row sits next to the center.
func Diamond(size int, src prng.Source) (*Grid, error) {
	if size < 2 || size%2 != 0 {
		return nil, fmt.Errorf("%w: diamond needs an even size, got %d", ErrInvalidSize, size)
	}
	mirrorWidth := size / 2

	g := &Grid{Size: size, Cells: make([]Field, 0, size*size)}
	half := make([]Field, mirrorWidth)
	for _, n := range RowBits(size) {
		for x := range half {
			half[x] = Transparent
		}
		for x := 0; x < n; x++ {
			half[x] = field(src)
		}
		// half is read outward from the center; emit it reversed, then as is.
		for x := mirrorWidth - 1; x >= 0; x-- {
			g.Cells = append(g.Cells, half[x])
		}
		g.Cells = append(g.Cells, half...)
	}
	return g, nil
}
