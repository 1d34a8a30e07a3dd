package game2048

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func mustModel(t *testing.T, raw [][]int, score int) *Model {
	t.Helper()
	m, err := NewFromValues(raw, score, 0, false)
	if err != nil {
		t.Fatalf("NewFromValues(%v) failed: %v", raw, err)
	}
	return m
}

// checkerboard returns a full board with no equal neighbours.
func checkerboard(n int) [][]int {
	raw := make([][]int, n)
	for r := range raw {
		raw[r] = make([]int, n)
		for c := range raw[r] {
			if (r+c)%2 == 0 {
				raw[r][c] = 2
			} else {
				raw[r][c] = 4
			}
		}
	}
	return raw
}

func TestTiltSingleColumnNorth(t *testing.T) {
	m := mustModel(t, [][]int{
		{2, 0},
		{2, 0},
	}, 0)

	if !m.Tilt(North) {
		t.Fatal("Tilt(North) should report a change")
	}

	want := [][]int{
		{0, 0},
		{4, 0},
	}
	if got := m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if m.Score() != 4 {
		t.Errorf("Score() = %d, want 4", m.Score())
	}
}

func TestTiltRow(t *testing.T) {
	tests := []struct {
		name  string
		side  Side
		row   []int
		want  []int
		score int
		moved bool
	}{
		{
			name:  "double merge west",
			side:  West,
			row:   []int{2, 2, 2, 2},
			want:  []int{4, 4, 0, 0},
			score: 8,
			moved: true,
		},
		{
			name:  "three in a row west",
			side:  West,
			row:   []int{2, 2, 2, 0},
			want:  []int{4, 2, 0, 0},
			score: 4,
			moved: true,
		},
		{
			name:  "three in a row east",
			side:  East,
			row:   []int{2, 2, 2, 0},
			want:  []int{0, 0, 2, 4},
			score: 4,
			moved: true,
		},
		{
			name:  "two pairs",
			side:  West,
			row:   []int{2, 2, 4, 4},
			want:  []int{4, 8, 0, 0},
			score: 12,
			moved: true,
		},
		{
			name:  "merged tile does not merge again",
			side:  West,
			row:   []int{4, 2, 2, 0},
			want:  []int{4, 4, 0, 0},
			score: 4,
			moved: true,
		},
		{
			name:  "merge result next to equal tile",
			side:  West,
			row:   []int{2, 2, 4, 0},
			want:  []int{4, 4, 0, 0},
			score: 4,
			moved: true,
		},
		{
			name:  "slide across gaps",
			side:  West,
			row:   []int{0, 2, 0, 2},
			want:  []int{4, 0, 0, 0},
			score: 4,
			moved: true,
		},
		{
			name:  "slide without merge",
			side:  East,
			row:   []int{2, 0, 4, 0},
			want:  []int{0, 0, 2, 4},
			score: 0,
			moved: true,
		},
		{
			name:  "already compact",
			side:  West,
			row:   []int{2, 4, 0, 0},
			want:  []int{2, 4, 0, 0},
			score: 0,
			moved: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := [][]int{
				tt.row,
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			}
			m := mustModel(t, raw, 0)

			if moved := m.Tilt(tt.side); moved != tt.moved {
				t.Errorf("Tilt(%v) = %v, want %v", tt.side, moved, tt.moved)
			}
			if got := m.Values()[0]; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("row after Tilt(%v) = %v, want %v", tt.side, got, tt.want)
			}
			if m.Score() != tt.score {
				t.Errorf("Score() = %d, want %d", m.Score(), tt.score)
			}
		})
	}
}

func TestTiltLastColumnMerges(t *testing.T) {
	m := mustModel(t, [][]int{
		{0, 0, 0, 8},
		{0, 0, 0, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	m.Tilt(North)

	if tile, ok := m.Tile(3, 3); !ok || tile.Value() != 16 {
		t.Errorf("Tile(3, 3) = %v, %v; want 16", tile, ok)
	}
	if m.Score() != 16 {
		t.Errorf("Score() = %d, want 16", m.Score())
	}
}

func TestTiltFullBoard(t *testing.T) {
	m := mustModel(t, [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}, 10)

	m.Tilt(West)

	want := [][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}
	if got := m.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if want := 10 + 4 + 8 + 4 + 4; m.Score() != want {
		t.Errorf("Score() = %d, want %d", m.Score(), want)
	}
}

func TestTiltNoOp(t *testing.T) {
	m := mustModel(t, checkerboard(4), 36)
	before := m.Values()

	for _, side := range Sides {
		if m.Tilt(side) {
			t.Errorf("Tilt(%v) on a locked board should report no change", side)
		}
	}
	if got := m.Values(); !reflect.DeepEqual(got, before) {
		t.Errorf("board changed: %v, want %v", got, before)
	}
	if m.Score() != 36 {
		t.Errorf("Score() = %d, want 36", m.Score())
	}
}

func TestTiltTwiceIsStable(t *testing.T) {
	m := mustModel(t, [][]int{
		{2, 0, 2, 4},
		{0, 8, 0, 0},
		{2, 0, 0, 4},
		{0, 0, 16, 0},
	}, 0)

	m.Tilt(South)
	score := m.Score()
	before := m.Values()

	if m.Tilt(South) {
		t.Error("second Tilt(South) should report no change")
	}
	if got := m.Values(); !reflect.DeepEqual(got, before) {
		t.Errorf("board changed: %v, want %v", got, before)
	}
	if m.Score() != score {
		t.Errorf("Score() = %d, want %d", m.Score(), score)
	}
}

// rotate turns raw a quarter clockwise, so the north edge becomes east.
func rotate(raw [][]int) [][]int {
	n := len(raw)
	out := make([][]int, n)
	for r := range out {
		out[r] = make([]int, n)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[n-1-c][r] = raw[r][c]
		}
	}
	return out
}

func randomValues(rng *rand.Rand, n int) [][]int {
	raw := make([][]int, n)
	for r := range raw {
		raw[r] = make([]int, n)
		for c := range raw[r] {
			if rng.Intn(3) > 0 {
				raw[r][c] = 1 << (1 + rng.Intn(3))
			}
		}
	}
	return raw
}

func TestTiltRotationSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for i := 0; i < 200; i++ {
		raw := randomValues(rng, 2+i%4)

		a := mustModel(t, raw, 0)
		b := mustModel(t, rotate(raw), 0)

		movedA := a.Tilt(North)
		movedB := b.Tilt(East)

		if movedA != movedB {
			t.Fatalf("board %v: Tilt(North) = %v but rotated Tilt(East) = %v", raw, movedA, movedB)
		}
		if got, want := b.Values(), rotate(a.Values()); !reflect.DeepEqual(got, want) {
			t.Fatalf("board %v: rotated result %v, want %v", raw, got, want)
		}
		if a.Score() != b.Score() {
			t.Fatalf("board %v: score %d vs %d", raw, a.Score(), b.Score())
		}
	}
}

func TestTiltCompacts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		raw := randomValues(rng, 4)
		for _, side := range Sides {
			m := mustModel(t, raw, 0)
			m.Tilt(side)

			v := m.board.View(side)
			for col := 0; col < 4; col++ {
				gap := false
				for row := 3; row >= 0; row-- {
					_, ok := v.Tile(col, row)
					if !ok {
						gap = true
					} else if gap {
						t.Fatalf("board %v tilted %v: gap below tile at view (%d, %d)", raw, side, col, row)
					}
				}
			}
		}
	}
}

// slideLine is a straightforward reference for one line moving toward
// index 0: compact, then merge equal neighbours once each.
func slideLine(line []int) ([]int, int) {
	out := make([]int, 0, len(line))
	score := 0
	merged := false
	for _, v := range line {
		if v == 0 {
			continue
		}
		if n := len(out); n > 0 && !merged && out[n-1] == v {
			out[n-1] *= 2
			score += out[n-1]
			merged = true
			continue
		}
		out = append(out, v)
		merged = false
	}
	for len(out) < len(line) {
		out = append(out, 0)
	}
	return out, score
}

func TestTiltMatchesLineReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		raw := randomValues(rng, 4)
		m := mustModel(t, raw, 0)
		m.Tilt(West)

		wantScore := 0
		got := m.Values()
		for r, line := range raw {
			want, score := slideLine(line)
			wantScore += score
			if !reflect.DeepEqual(got[r], want) {
				t.Fatalf("row %v tilted west = %v, want %v", line, got[r], want)
			}
		}
		if m.Score() != wantScore {
			t.Fatalf("board %v: Score() = %d, want %d", raw, m.Score(), wantScore)
		}
	}
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]int
		want bool
	}{
		{
			name: "empty cells",
			raw: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 0, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "locked",
			raw:  checkerboard(4),
			want: true,
		},
		{
			name: "horizontal pair",
			raw: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 2, 8},
			},
			want: false,
		},
		{
			name: "vertical pair",
			raw: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
			want: false,
		},
		{
			name: "max tile",
			raw: [][]int{
				{2048, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustModel(t, tt.raw, 0)
			if got := m.GameOver(); got != tt.want {
				t.Errorf("GameOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameOverLatchesMaxScore(t *testing.T) {
	m, err := NewFromValues(checkerboard(4), 100, 50, false)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	if !m.GameOver() {
		t.Fatal("GameOver() = false, want true")
	}
	if m.MaxScore() != 100 {
		t.Errorf("MaxScore() = %d, want 100", m.MaxScore())
	}

	m, err = NewFromValues(checkerboard(4), 100, 200, false)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	m.GameOver()
	if m.MaxScore() != 200 {
		t.Errorf("MaxScore() = %d, want 200", m.MaxScore())
	}
}

func TestGameOverNotLatchedWhilePlaying(t *testing.T) {
	m, err := NewFromValues([][]int{{2, 0}, {0, 0}}, 40, 10, false)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	if m.GameOver() {
		t.Fatal("GameOver() = true, want false")
	}
	if m.MaxScore() != 10 {
		t.Errorf("MaxScore() = %d, want 10", m.MaxScore())
	}
}

func TestTiltReachingMaxPieceEndsGame(t *testing.T) {
	m := mustModel(t, [][]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, 0)

	m.Tilt(West)

	if !m.GameOver() {
		t.Error("GameOver() = false after making 2048")
	}
	if m.MaxScore() != 2048 {
		t.Errorf("MaxScore() = %d, want 2048", m.MaxScore())
	}
}

func TestAddTile(t *testing.T) {
	m := New(4)

	tile, err := NewTile(2, 1, 3)
	if err != nil {
		t.Fatalf("NewTile failed: %v", err)
	}
	if err := m.AddTile(tile); err != nil {
		t.Fatalf("AddTile failed: %v", err)
	}
	got, ok := m.Tile(1, 3)
	if !ok || got.Value() != 2 || got.Col() != 1 || got.Row() != 3 {
		t.Errorf("Tile(1, 3) = %v, %v; want 2@(1,3)", got, ok)
	}

	if err := m.AddTile(tile); !errors.Is(err, ErrCellOccupied) {
		t.Errorf("AddTile on occupied cell: err = %v, want ErrCellOccupied", err)
	}

	outside, _ := NewTile(4, 4, 0)
	if err := m.AddTile(outside); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("AddTile outside board: err = %v, want ErrOutOfBounds", err)
	}

	if err := m.AddTile(Tile{}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("AddTile zero tile: err = %v, want ErrInvalidValue", err)
	}
	if _, ok := m.Tile(0, 0); ok {
		t.Error("zero tile was placed at (0, 0)")
	}
}

func TestNewTileRejectsBadValues(t *testing.T) {
	for _, v := range []int{0, -2, 3, 6, 100} {
		if _, err := NewTile(v, 0, 0); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("NewTile(%d): err = %v, want ErrInvalidValue", v, err)
		}
	}
}

func TestNewFromValuesErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]int
		want error
	}{
		{name: "empty", raw: nil, want: ErrNotSquare},
		{name: "ragged", raw: [][]int{{2, 0}, {0}}, want: ErrNotSquare},
		{name: "bad value", raw: [][]int{{2, 3}, {0, 0}}, want: ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewFromValues(tt.raw, 0, 0, false); !errors.Is(err, tt.want) {
				t.Errorf("NewFromValues: err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClear(t *testing.T) {
	m, err := NewFromValues(checkerboard(2), 12, 0, false)
	if err != nil {
		t.Fatalf("NewFromValues failed: %v", err)
	}
	m.GameOver()

	if !m.Clear() {
		t.Error("Clear() on a full board should report a change")
	}
	if m.Score() != 0 {
		t.Errorf("Score() = %d, want 0", m.Score())
	}
	if m.MaxScore() != 12 {
		t.Errorf("MaxScore() = %d, want 12", m.MaxScore())
	}
	if _, ok := m.Tile(0, 0); ok {
		t.Error("Tile(0, 0) still present after Clear")
	}
	if m.Clear() {
		t.Error("Clear() on an empty board should report no change")
	}
}

func TestTileOutOfRangePanics(t *testing.T) {
	m := New(3)
	defer func() {
		if recover() == nil {
			t.Error("Tile(3, 0) should panic")
		}
	}()
	m.Tile(3, 0)
}
