// Package game2048 implements the rules of the 2048 sliding-tile puzzle:
// the board, perspective views used to tilt in any direction with one
// algorithm, merging, scoring and game-over detection.
//
// Coordinates are (col, row) with (0, 0) at the bottom-left corner.
package game2048

import "fmt"

// Board is a size x size grid of tile values. A zero cell is empty.
// The board itself has no orientation; perspective-relative access goes
// through View.
type Board struct {
	size  int
	cells [][]int // cells[col][row]
}

// NewBoard creates an empty board with the given dimension.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("game2048: board size must be positive, got %d", size))
	}
	cells := make([][]int, size)
	for c := range cells {
		cells[c] = make([]int, size)
	}
	return &Board{size: size, cells: cells}
}

// newBoardFromValues builds a board from raw[row][col], 0 meaning empty.
func newBoardFromValues(raw [][]int) (*Board, error) {
	size := len(raw)
	if size == 0 {
		return nil, fmt.Errorf("game2048: empty grid: %w", ErrNotSquare)
	}
	b := NewBoard(size)
	for row, line := range raw {
		if len(line) != size {
			return nil, fmt.Errorf("game2048: row %d has %d cells, want %d: %w", row, len(line), size, ErrNotSquare)
		}
		for col, v := range line {
			if v == 0 {
				continue
			}
			if !validValue(v) {
				return nil, fmt.Errorf("game2048: value %d at (%d, %d): %w", v, col, row, ErrInvalidValue)
			}
			b.cells[col][row] = v
		}
	}
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Tile returns the tile at (col, row) in the North perspective.
func (b *Board) Tile(col, row int) (Tile, bool) {
	return b.View(North).Tile(col, row)
}

// AddTile places t at its position. The target cell must be empty.
func (b *Board) AddTile(t Tile) error {
	if !b.inBounds(t.col, t.row) {
		return fmt.Errorf("game2048: add %v: %w", t, ErrOutOfBounds)
	}
	if !validValue(t.value) {
		return fmt.Errorf("game2048: add %v: %w", t, ErrInvalidValue)
	}
	if b.cells[t.col][t.row] != 0 {
		return fmt.Errorf("game2048: add %v: %w", t, ErrCellOccupied)
	}
	b.cells[t.col][t.row] = t.value
	return nil
}

// Clear empties every cell.
func (b *Board) Clear() {
	for c := range b.cells {
		clear(b.cells[c])
	}
}

// IsEmpty reports whether no tile is on the board.
func (b *Board) IsEmpty() bool {
	for c := range b.cells {
		for _, v := range b.cells[c] {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// Values returns a copy of the grid as raw[row][col].
func (b *Board) Values() [][]int {
	raw := make([][]int, b.size)
	for row := range raw {
		raw[row] = make([]int, b.size)
		for col := range raw[row] {
			raw[row][col] = b.cells[col][row]
		}
	}
	return raw
}

// View returns the board as seen from side.
func (b *Board) View(side Side) View {
	if !side.Valid() {
		panic(fmt.Sprintf("game2048: invalid side %d", side))
	}
	return View{board: b, side: side}
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.size && row >= 0 && row < b.size
}

func (b *Board) mustBeInBounds(col, row int) {
	if !b.inBounds(col, row) {
		panic(fmt.Sprintf("game2048: (%d, %d) outside %dx%d board", col, row, b.size, b.size))
	}
}

// View is a board seen from one side. It is a plain value: copying it is
// cheap and it never changes the board's orientation.
type View struct {
	board *Board
	side  Side
}

// Side returns the perspective of the view.
func (v View) Side() Side {
	return v.side
}

// Size returns the board dimension.
func (v View) Size() int {
	return v.board.size
}

// physical maps view coordinates to storage coordinates.
func (v View) physical(col, row int) (int, int) {
	v.board.mustBeInBounds(col, row)
	n := v.board.size
	return v.side.Col(col, row, n), v.side.Row(col, row, n)
}

// Tile returns the tile at view coordinates (col, row). The tile's
// position is reported in the same view coordinates.
func (v View) Tile(col, row int) (Tile, bool) {
	pc, pr := v.physical(col, row)
	val := v.board.cells[pc][pr]
	if val == 0 {
		return Tile{}, false
	}
	return Tile{value: val, col: col, row: row}, true
}

// Move relocates t from its recorded view position to (col, row). A tile
// already at the destination is replaced by t with its value doubled.
// Returns true iff that merge happened. t must have been read from v and
// still be on the board; Move panics otherwise.
func (v View) Move(col, row int, t Tile) bool {
	fc, fr := v.physical(t.col, t.row)
	cells := v.board.cells
	if t.value == 0 || cells[fc][fr] != t.value {
		panic(fmt.Sprintf("game2048: move %v: no such tile in %v view", t, v.side))
	}
	if t.col == col && t.row == row {
		return false
	}
	tc, tr := v.physical(col, row)
	cells[fc][fr] = 0
	if cells[tc][tr] == 0 {
		cells[tc][tr] = t.value
		return false
	}
	cells[tc][tr] = 2 * t.value
	return true
}
