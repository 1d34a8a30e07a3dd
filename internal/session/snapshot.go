package session

// State represents the current game state.
type State string

const (
	StatePlaying  State = "playing"
	StateWon      State = "won"
	StateGameOver State = "game_over"
)

// Snapshot captures the complete game state for determinism testing and display.
type Snapshot struct {
	Moves   int
	Score   int
	Best    int
	Board   [][]int // Board[row][col], row 0 at the bottom
	MaxTile int
	State   State
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.over && s.Won():
		state = StateWon
	case s.over:
		state = StateGameOver
	}

	return Snapshot{
		Moves:   s.moves,
		Score:   s.model.Score(),
		Best:    s.model.MaxScore(),
		Board:   s.model.Values(),
		MaxTile: s.MaxTile(),
		State:   state,
	}
}
