package game2048

// MaxPiece is the tile value that wins the game.
const MaxPiece = 2048

// Model is the state of one game: board, score and end-of-game status.
// A Model is not safe for concurrent use.
type Model struct {
	board    *Board
	score    int
	maxScore int
	gameOver bool
}

// New creates a game on an empty size x size board with score 0.
func New(size int) *Model {
	return &Model{board: NewBoard(size)}
}

// NewFromValues creates a game from raw[row][col] tile values (0 = empty,
// raw[0][0] is the bottom-left cell). Intended for fixtures and tools.
func NewFromValues(raw [][]int, score, maxScore int, gameOver bool) (*Model, error) {
	b, err := newBoardFromValues(raw)
	if err != nil {
		return nil, err
	}
	return &Model{
		board:    b,
		score:    score,
		maxScore: maxScore,
		gameOver: gameOver,
	}, nil
}

// Tile returns the tile at (col, row), if any.
func (m *Model) Tile(col, row int) (Tile, bool) {
	return m.board.Tile(col, row)
}

// Size returns the board dimension.
func (m *Model) Size() int {
	return m.board.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score seen at the end of a game.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// Values returns a copy of the board as raw[row][col].
func (m *Model) Values() [][]int {
	return m.board.Values()
}

// GameOver reports whether the game has ended: a MaxPiece tile exists or
// no tilt can change the board. When it has, MaxScore is raised to Score.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	if m.gameOver {
		m.maxScore = max(m.score, m.maxScore)
	}
	return m.gameOver
}

// Clear empties the board and resets the score. MaxScore is kept.
// Returns whether anything changed.
func (m *Model) Clear() bool {
	changed := m.score != 0 || m.gameOver || !m.board.IsEmpty()
	m.score = 0
	m.gameOver = false
	m.board.Clear()
	return changed
}

// AddTile places t on the board. The cell at t's position must be empty;
// check with Tile first. A nil error means the board changed.
func (m *Model) AddTile(t Tile) error {
	if err := m.board.AddTile(t); err != nil {
		return err
	}
	m.checkGameOver()
	return nil
}

// Tilt slides every tile toward side, merging equal neighbours once each.
// Returns true iff the board changed. Tilt runs even when the game is over.
//
// Rules:
//  1. Two tiles adjacent in the direction of motion with the same value
//     merge into one tile of twice the value, which is added to the score.
//  2. A tile produced by a merge does not merge again in the same tilt.
//  3. Of three equal tiles in a line, the two nearest the edge merge.
func (m *Model) Tilt(side Side) bool {
	v := m.board.View(side)
	moved := slide(v)
	gained, merged := merge(v)
	slide(v)
	m.score += gained
	m.checkGameOver()
	return moved || merged
}

func (m *Model) checkGameOver() {
	m.gameOver = checkGameOver(m.board)
}

// slide compacts every column of v toward the top edge, preserving order.
// Returns whether any tile moved.
func slide(v View) bool {
	moved := false
	n := v.Size()
	for col := 0; col < n; col++ {
		next := n - 1
		for row := n - 1; row >= 0; row-- {
			t, ok := v.Tile(col, row)
			if !ok {
				continue
			}
			v.Move(col, next, t)
			if next != row {
				moved = true
			}
			next--
		}
	}
	return moved
}

// merge combines equal vertical neighbours of a compacted view, scanning
// each column from the top edge down. Returns the score gained and
// whether any merge happened.
func merge(v View) (int, bool) {
	gained := 0
	merged := false
	n := v.Size()
	for col := 0; col < n; col++ {
		// Cells above boundary hold merge results and take no part in
		// further merges this tilt.
		boundary := n - 1
		for row := n - 2; row >= 0; row-- {
			if row+1 > boundary {
				continue
			}
			t, ok := v.Tile(col, row)
			if !ok {
				continue
			}
			above, ok := v.Tile(col, row+1)
			if !ok || above.value != t.value {
				continue
			}
			v.Move(col, row+1, t)
			boundary -= 2
			gained += 2 * t.value
			merged = true
		}
	}
	return gained, merged
}
