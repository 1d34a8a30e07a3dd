package game2048

import (
	"errors"
	"fmt"
)

var (
	// ErrCellOccupied is returned when adding a tile onto a non-empty cell.
	ErrCellOccupied = errors.New("cell is occupied")
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidValue is returned for tile values that are not a power of two.
	ErrInvalidValue = errors.New("tile value must be a positive power of two")
	// ErrNotSquare is returned when a raw grid is not size x size.
	ErrNotSquare = errors.New("grid must be square")
)

// Tile is a numbered piece at a position. Tiles are values: moving or
// merging produces a new Tile rather than changing an existing one.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile creates a tile with the given value at (col, row).
func NewTile(value, col, row int) (Tile, error) {
	if !validValue(value) {
		return Tile{}, fmt.Errorf("game2048: tile %d at (%d, %d): %w", value, col, row, ErrInvalidValue)
	}
	return Tile{value: value, col: col, row: row}, nil
}

// Value returns the number on the tile.
func (t Tile) Value() int { return t.value }

// Col returns the column the tile was read or placed at.
func (t Tile) Col() int { return t.col }

// Row returns the row the tile was read or placed at.
func (t Tile) Row() int { return t.row }

// String renders the tile as "value@(col,row)".
func (t Tile) String() string {
	return fmt.Sprintf("%d@(%d,%d)", t.value, t.col, t.row)
}

func validValue(v int) bool {
	return v > 0 && v&(v-1) == 0
}
