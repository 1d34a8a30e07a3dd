package game2048

// checkGameOver reports whether b is a finished game.
func checkGameOver(b *Board) bool {
	return MaxTileExists(b) || !AtLeastOneMoveExists(b)
}

// EmptySpaceExists reports whether any cell of b is empty.
func EmptySpaceExists(b *Board) bool {
	n := b.Size()
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			if _, ok := b.Tile(col, row); !ok {
				return true
			}
		}
	}
	return false
}

// MaxTileExists reports whether any tile on b has the value MaxPiece.
func MaxTileExists(b *Board) bool {
	n := b.Size()
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			if t, ok := b.Tile(col, row); ok && t.value == MaxPiece {
				return true
			}
		}
	}
	return false
}

// AtLeastOneMoveExists reports whether some tilt would change b: there is
// an empty cell, or two equal tiles sit next to each other in the
// direction of motion of one of the four sides.
func AtLeastOneMoveExists(b *Board) bool {
	return EmptySpaceExists(b) || mergeable(b)
}

func mergeable(b *Board) bool {
	n := b.Size()
	for _, side := range Sides {
		v := b.View(side)
		for col := 0; col < n; col++ {
			for row := 0; row < n-1; row++ {
				t, ok := v.Tile(col, row)
				if !ok {
					continue
				}
				if above, ok := v.Tile(col, row+1); ok && above.value == t.value {
					return true
				}
			}
		}
	}
	return false
}
