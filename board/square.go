package board

import "fmt"

// Color identifies a side. Black moves first.
type Color uint8

const (
	Black Color = iota
	White
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Dim is the board dimension.
const Dim = 8

// NumSquares is the number of cells on the board.
const NumSquares = Dim * Dim

// Square is a cell index in 0..63, row-major (y*8 + x). Index 0 is a1.
type Square uint8

// SquareFromXY returns the square at (x, y), or ok=false outside the board.
func SquareFromXY(x, y int) (Square, bool) {
	if x < 0 || x >= Dim || y < 0 || y >= Dim {
		return 0, false
	}
	return Square(y*Dim + x), true
}

// SquareFromIndex returns the square with the given index, or ok=false
// outside 0..63.
func SquareFromIndex(index int) (Square, bool) {
	if index < 0 || index >= NumSquares {
		return 0, false
	}
	return Square(index), true
}

// X returns the file, 0..7.
func (s Square) X() int { return int(s) % Dim }

// Y returns the rank, 0..7.
func (s Square) Y() int { return int(s) / Dim }

// Index returns the 0..63 index.
func (s Square) Index() int { return int(s) }

// Bit returns the singleton bitboard for this square.
func (s Square) Bit() uint64 {
	if s >= NumSquares {
		return 0
	}
	return 1 << uint(s)
}

// String returns coordinates like "d3": file a-h, rank 1-8.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.X()), s.Y()+1)
}
