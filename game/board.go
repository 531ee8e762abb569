package game

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid indexed [x][y]. It is a value: assigning or passing a
// Board copies it, so boards returned by Apply never alias their input.
type Board [Size][Size]Color

// Cell is one board coordinate together with its content.
type Cell struct {
	X, Y  int
	Color Color
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	var b Board
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
	return b
}

// InBounds reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size
}

// At returns the content of (x, y). Callers keep coordinates in bounds.
func (b Board) At(x, y int) Color {
	return b[x][y]
}

// Cells returns all 64 cells in scan order (x outer, y inner).
func (b Board) Cells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			cells = append(cells, Cell{X: x, Y: y, Color: b[x][y]})
		}
	}
	return cells
}

// Count returns the number of cells holding c.
func (b Board) Count(c Color) int {
	n := 0
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if b[x][y] == c {
				n++
			}
		}
	}
	return n
}

// Empties returns the number of empty cells.
func (b Board) Empties() int {
	return b.Count(Empty)
}

// String renders the board one row (fixed y) per line, '.' for empty,
// 'W' for white and 'B' for black.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sb.WriteByte(symbol(b[x][y]))
		}
		if y < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from up to eight rows in the String format.
// Row i holds the cells with y == i; missing rows and columns are empty.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > Size {
		return b, fmt.Errorf("too many rows: %d", len(rows))
	}
	for y, row := range rows {
		if len(row) > Size {
			return b, fmt.Errorf("row %d too long: %q", y, row)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '.', ' ':
				b[x][y] = Empty
			case 'W', 'w':
				b[x][y] = White
			case 'B', 'b':
				b[x][y] = Black
			default:
				return b, fmt.Errorf("unknown cell %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures; it panics on malformed input.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func symbol(c Color) byte {
	switch c {
	case White:
		return 'W'
	case Black:
		return 'B'
	default:
		return '.'
	}
}
