// Package game implements a game of Tic-Tac-Toe on top of the minimax engine.
package game

import (
	"fmt"

	"github.com/twipi/tttminimax/minimax"
)

// Player represents a player.
type Player uint8

const (
	NoPlayer Player = iota
	// Player1 plays X and always moves first.
	Player1
	// Player2 plays O.
	Player2
)

// String returns the string representation of the player.
func (p Player) String() string {
	switch p {
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the opponent of the player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

// Square returns the board square marked by the player. X is the minimax
// player and O is the minimax opponent.
func (p Player) Square() minimax.Square {
	switch p {
	case Player1:
		return minimax.PlayerSquare
	case Player2:
		return minimax.OpponentSquare
	default:
		return minimax.EmptySquare
	}
}

// PlayerAt returns the player owning the square.
func PlayerAt(s minimax.Square) Player {
	switch s {
	case minimax.PlayerSquare:
		return Player1
	case minimax.OpponentSquare:
		return Player2
	default:
		return NoPlayer
	}
}

// BoardPosition represents a position on the board.
type BoardPosition struct {
	Row, Column uint8
}

// BoardPositionAt returns a board position at the given coordinates on a
// size×size board. If the coordinates are invalid, returns an error.
func BoardPositionAt(row, col, size int) (BoardPosition, error) {
	if row < 0 || row >= size || col < 0 || col >= size {
		return BoardPosition{}, fmt.Errorf("invalid position: (%d, %d)", row, col)
	}
	return BoardPosition{Row: uint8(row), Column: uint8(col)}, nil
}

// BoardPositionFromIndex returns a board position from the given row-major
// index on a size×size board.
func BoardPositionFromIndex(i, size int) (BoardPosition, error) {
	if i < 0 || i >= size*size {
		return BoardPosition{}, fmt.Errorf("invalid index: %d", i)
	}
	return BoardPosition{Row: uint8(i / size), Column: uint8(i % size)}, nil
}

// Index returns the row-major index of the position on a size×size board.
func (p BoardPosition) Index(size int) int {
	return int(p.Row)*size + int(p.Column)
}

// Move returns the position as a minimax move.
func (p BoardPosition) Move() minimax.Move {
	return minimax.Move{Row: int(p.Row), Column: int(p.Column)}
}

func positionFromMove(m minimax.Move) BoardPosition {
	return BoardPosition{Row: uint8(m.Row), Column: uint8(m.Column)}
}

// Game represents a game of Tic-Tac-Toe.
type Game struct {
	Board *minimax.Board
	Turns int
}

// NewGame creates a new game of Tic-Tac-Toe on a 3×3 board.
func NewGame() *Game {
	return &Game{
		Board: minimax.NewBoard(),
	}
}

// NewGameSize creates a new game on a size×size board.
func NewGameSize(size int) (*Game, error) {
	b, err := minimax.NewBoardSize(size)
	if err != nil {
		return nil, err
	}
	return &Game{Board: b}, nil
}

func (g *Game) String() string {
	return fmt.Sprintf("turn %d:\n%s", g.Turns, g.Board)
}

// Turn returns the current player.
func (g *Game) Turn() Player {
	if g.Turns%2 == 0 {
		return Player1
	}
	return Player2
}

// At returns the player at the given position.
func (g *Game) At(pos BoardPosition) Player {
	if !g.Board.Contains(pos.Move()) {
		return NoPlayer
	}
	return PlayerAt(g.Board.At(pos.Move()))
}

// MakeMove makes a move for the current player at the given position.
// It returns false if the position is invalid or taken, or if the game has
// already ended.
func (g *Game) MakeMove(pos BoardPosition) bool {
	m := pos.Move()
	if !g.Board.Contains(m) || g.Board.At(m) != minimax.EmptySquare || g.HasEnded() {
		return false
	}
	g.Board.Set(m, g.Turn().Square())
	g.Turns++
	return true
}

// HasEnded is a convenience method around [GameState] that returns true if the
// game has ended.
func (g *Game) HasEnded() bool {
	_, ended := g.GameState()
	return ended
}

// GameState returns the state of the game.
// If the game is over, returns the winner and true or NoPlayer and true if it's
// a draw.
// Otherwise, returns NoPlayer and false.
func (g *Game) GameState() (winner Player, ended bool) {
	score := minimax.ComputeBoardScore(g.Board, 0)
	switch {
	case !minimax.IsGameOver(score):
		return NoPlayer, false
	case score > minimax.DrawScore:
		return Player1, true
	case score < minimax.DrawScore:
		return Player2, true
	default:
		return NoPlayer, true
	}
}

// Reset clears the board for a new game.
func (g *Game) Reset() {
	g.Board.Reset()
	g.Turns = 0
}

// Clone creates a deep copy of the game.
func (g *Game) Clone() *Game {
	return &Game{
		Board: g.Board.Clone(),
		Turns: g.Turns,
	}
}
