package game

import (
	"fmt"
	"testing"
)

func TestAI(t *testing.T) {
	for x := range 3 {
		for y := range 3 {
			t.Run(fmt.Sprintf("start(%d,%d)", x, y), func(t *testing.T) {
				g := NewGame()

				g.MakeMove(BoardPosition{uint8(x), uint8(y)})
				t.Log(g)

				ps := []*AI{NewAI(g, Player1, nil), NewAI(g, Player2, nil)}
				for ps[g.Turns%2].MakeMove() {
					t.Log(g)
				}

				if winner, ended := g.GameState(); !ended || winner != NoPlayer {
					t.Errorf("game should always end in a draw, got winner %v (ended=%v)", winner, ended)
				}
			})
		}
	}
}

func TestAIFirstMove(t *testing.T) {
	g := NewGame()
	ai := NewAI(g, Player1, nil)

	if !ai.MakeMove() {
		t.Fatal("AI should be able to open the game")
	}
	if g.At(BoardPosition{0, 0}) != Player1 {
		t.Errorf("AI should open in the top-left corner:\n%v", g)
	}
}

func TestAIWaitsForTurn(t *testing.T) {
	g := NewGame()
	ai := NewAI(g, Player2, nil)

	if _, ok := ai.NextMove(); ok {
		t.Errorf("AI playing O should not move first")
	}
	if ai.MakeMove() {
		t.Errorf("MakeMove should fail out of turn")
	}
}

func TestAITakesWin(t *testing.T) {
	g := NewGame()
	for _, pos := range []BoardPosition{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {0, 2}} {
		if !g.MakeMove(pos) {
			t.Fatalf("move %v failed on\n%v", pos, g)
		}
	}

	ai := NewAI(g, Player2, nil)
	if !ai.MakeMove() {
		t.Fatalf("AI failed to move on\n%v", g)
	}

	if winner, ended := g.GameState(); !ended || winner != Player2 {
		t.Errorf("AI should complete the middle column, got\n%v", g)
	}
}

func TestAIHint(t *testing.T) {
	g := NewGame()
	for _, pos := range []BoardPosition{{0, 0}, {1, 1}, {0, 1}} {
		g.MakeMove(pos)
	}

	// O must block the top row.
	a := NewAI(g, Player1, nil).Hint(Player2)
	if a.Move.Row != 0 || a.Move.Column != 2 {
		t.Errorf("hint for O = %v, want (0, 2)", a.Move)
	}
	if len(a.Moves) != 6 {
		t.Errorf("hint should score all %d empty squares, got %d", 6, len(a.Moves))
	}
}
