package game

import (
	"testing"

	"github.com/twipi/tttminimax/minimax"
)

func TestGameState(t *testing.T) {
	tests := []struct {
		name   string
		moves  []BoardPosition
		winner Player
		ended  bool
	}{
		{
			name: "new game",
		},
		{
			name:   "X wins row",
			moves:  []BoardPosition{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
			winner: Player1,
			ended:  true,
		},
		{
			name:   "O wins anti-diagonal",
			moves:  []BoardPosition{{0, 0}, {0, 2}, {0, 1}, {1, 1}, {2, 2}, {2, 0}},
			winner: Player2,
			ended:  true,
		},
		{
			name: "draw",
			moves: []BoardPosition{
				{0, 0}, {0, 1}, {0, 2},
				{1, 1}, {1, 0}, {1, 2},
				{2, 1}, {2, 0}, {2, 2},
			},
			winner: NoPlayer,
			ended:  true,
		},
		{
			name:  "in progress",
			moves: []BoardPosition{{1, 1}, {0, 0}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGame()
			for _, pos := range test.moves {
				if !g.MakeMove(pos) {
					t.Fatalf("move %v failed on\n%v", pos, g)
				}
			}

			winner, ended := g.GameState()
			if winner != test.winner || ended != test.ended {
				t.Errorf("GameState() = (%v, %v), want (%v, %v)\n%v", winner, ended, test.winner, test.ended, g)
			}
		})
	}
}

func TestMakeMove(t *testing.T) {
	g := NewGame()

	if g.Turn() != Player1 {
		t.Fatalf("X should move first")
	}
	if !g.MakeMove(BoardPosition{1, 1}) {
		t.Fatalf("first move failed")
	}
	if g.Turn() != Player2 {
		t.Errorf("turn should pass to O")
	}
	if g.At(BoardPosition{1, 1}) != Player1 {
		t.Errorf("center should belong to X")
	}
	if g.Board.At(minimax.Move{Row: 1, Column: 1}) != minimax.PlayerSquare {
		t.Errorf("X should be the minimax player")
	}

	if g.MakeMove(BoardPosition{1, 1}) {
		t.Errorf("occupied square should be rejected")
	}
	if g.MakeMove(BoardPosition{3, 0}) {
		t.Errorf("out of range square should be rejected")
	}
	if g.Turns != 1 {
		t.Errorf("rejected moves should not count, got %d turns", g.Turns)
	}
}

func TestMakeMoveAfterGameOver(t *testing.T) {
	g := NewGame()
	for _, pos := range []BoardPosition{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}} {
		g.MakeMove(pos)
	}

	if g.MakeMove(BoardPosition{2, 2}) {
		t.Errorf("moves after the game ended should be rejected")
	}

	g.Reset()
	if g.Turns != 0 || !g.Board.IsEmpty() || g.HasEnded() {
		t.Errorf("Reset should start a new game, got\n%v", g)
	}
}

func TestClone(t *testing.T) {
	g := NewGame()
	g.MakeMove(BoardPosition{0, 0})

	g2 := g.Clone()
	g2.MakeMove(BoardPosition{1, 1})

	if g.At(BoardPosition{1, 1}) != NoPlayer || g.Turns != 1 {
		t.Errorf("clone should not share state with the original")
	}
}

func TestBoardPositionFromIndex(t *testing.T) {
	for i := range 9 {
		pos, err := BoardPositionFromIndex(i, 3)
		if err != nil {
			t.Fatalf("index %d: %v", i, err)
		}
		if pos.Index(3) != i {
			t.Errorf("index %d round-tripped to %d", i, pos.Index(3))
		}
	}

	for _, i := range []int{-1, 9} {
		if _, err := BoardPositionFromIndex(i, 3); err == nil {
			t.Errorf("index %d should be invalid", i)
		}
	}

	if _, err := BoardPositionAt(1, 3, 3); err == nil {
		t.Errorf("column 3 should be invalid")
	}
}

func TestNewGameSize(t *testing.T) {
	if _, err := NewGameSize(0); err == nil {
		t.Errorf("size 0 should be rejected")
	}

	g, err := NewGameSize(4)
	if err != nil {
		t.Fatalf("NewGameSize(4): %v", err)
	}
	for _, pos := range []BoardPosition{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}, {0, 3}} {
		g.MakeMove(pos)
	}
	if winner, _ := g.GameState(); winner != Player1 {
		t.Errorf("X should win the top row of a 4×4 board, got %v", winner)
	}
}
