// Package session runs a game of 2048: it owns a rules model, spawns new
// tiles from a seeded RNG after every move and tracks the game's status.
package session

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game2048"
)

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	cfg    config.Config
	seed   int64
	rng    *rand.Rand
	model  *game2048.Model
	logger *log.Logger

	moves int
	over  bool
}

// New creates a session and starts the first game.
// A nil logger discards all output.
func New(cfg config.Config, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Session{
		cfg:    cfg,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		model:  game2048.New(cfg.Board.Size),
		logger: logger,
	}
	s.Reset()
	return s
}

// Reset clears the board and places the initial tiles. The best score
// carries over between games.
func (s *Session) Reset() {
	s.model.Clear()
	s.moves = 0
	s.over = false

	for i := 0; i < s.cfg.Spawn.InitialTiles; i++ {
		s.spawnTile()
	}
	s.over = s.model.GameOver()

	s.logger.Info("new game", "size", s.cfg.Board.Size, "seed", s.seed, "best", s.model.MaxScore())
}

// Move tilts the board toward side and, if anything moved, spawns a tile.
// Moves are refused once the game is over; call Reset to play again.
// Returns whether the board changed.
func (s *Session) Move(side game2048.Side) bool {
	if s.over {
		s.logger.Debug("move ignored, game is over", "side", side)
		return false
	}

	before := s.model.Score()
	if !s.model.Tilt(side) {
		s.logger.Debug("move had no effect", "side", side)
		return false
	}
	s.moves++
	s.logger.Debug("move", "side", side, "gained", s.model.Score()-before, "score", s.model.Score())

	s.spawnTile()

	if s.model.GameOver() {
		s.over = true
		s.logger.Info("game over",
			"won", s.Won(),
			"score", s.model.Score(),
			"best", s.model.MaxScore(),
			"moves", s.moves,
			"max_tile", s.MaxTile(),
		)
	}
	return true
}

// spawnTile places a 2 (or a 4, with the configured probability) on a
// random empty cell. Returns false if the board is full.
func (s *Session) spawnTile() bool {
	empty := s.emptyCells()
	if len(empty) == 0 {
		return false
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.cfg.Spawn.FourProbability {
		value = 4
	}

	tile, err := game2048.NewTile(value, cell[0], cell[1])
	if err == nil {
		err = s.model.AddTile(tile)
	}
	if err != nil {
		s.logger.Error("spawn failed", "tile", tile, "error", err)
		return false
	}
	s.logger.Debug("spawn", "tile", tile)
	return true
}

// emptyCells returns the (col, row) of every empty cell in scan order.
func (s *Session) emptyCells() [][2]int {
	n := s.model.Size()
	var cells [][2]int
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if _, ok := s.model.Tile(col, row); !ok {
				cells = append(cells, [2]int{col, row})
			}
		}
	}
	return cells
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.model.Score()
}

// Best returns the best finished-game score of this session.
func (s *Session) Best() int {
	return s.model.MaxScore()
}

// Moves returns the number of moves that changed the board this game.
func (s *Session) Moves() int {
	return s.moves
}

// Over reports whether the current game has ended.
func (s *Session) Over() bool {
	return s.over
}

// Won reports whether a winning tile has been made.
func (s *Session) Won() bool {
	return s.MaxTile() >= game2048.MaxPiece
}

// MaxTile returns the highest tile value on the board, or 0 if empty.
func (s *Session) MaxTile() int {
	best := 0
	for _, line := range s.model.Values() {
		for _, v := range line {
			best = max(best, v)
		}
	}
	return best
}
