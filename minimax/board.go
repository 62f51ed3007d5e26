// Package minimax implements an exhaustive minimax search for tic-tac-toe
// style games played on an N×N board.
//
// The search is synchronous and keeps no state between calls. Boards passed to
// the search are used as scratch space: every square that is changed while
// exploring a continuation is restored before the search returns.
package minimax

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Square is the state of a single square on the board.
type Square uint8

const (
	EmptySquare Square = iota
	OpponentSquare
	PlayerSquare
)

// String returns the string representation of the square.
func (s Square) String() string {
	switch s {
	case PlayerSquare:
		return "X"
	case OpponentSquare:
		return "O"
	case EmptySquare:
		return "-"
	default:
		return fmt.Sprintf("Square(%d)", uint8(s))
	}
}

// Opponent returns the mark of the other side. EmptySquare is returned as is.
func (s Square) Opponent() Square {
	switch s {
	case PlayerSquare:
		return OpponentSquare
	case OpponentSquare:
		return PlayerSquare
	default:
		return s
	}
}

// Move is a row and column pair identifying a square.
type Move struct {
	Row, Column int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Column)
}

const (
	// DefaultSize is the size of a regular tic-tac-toe board.
	DefaultSize = 3
	// MaxSize is the largest supported board size. It keeps every possible
	// search depth below PlayerWinningScore.
	MaxSize = 9
)

var (
	ErrInvalidSize   = errors.New("invalid board size")
	ErrNotSquare     = errors.New("board is not square")
	ErrInvalidSquare = errors.New("invalid square")
)

// Board is an N×N grid of squares. The zero value is not usable; use
// [NewBoard], [NewBoardSize] or [ParseBoard].
//
// A Board must not be copied by value, since copies share their squares. Use
// [Board.Clone] instead.
type Board struct {
	size    int
	squares []Square
}

// NewBoard returns an empty 3×3 board.
func NewBoard() *Board {
	b, _ := NewBoardSize(DefaultSize)
	return b
}

// NewBoardSize returns an empty size×size board.
func NewBoardSize(size int) (*Board, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d (must be 1 to %d)", ErrInvalidSize, size, MaxSize)
	}
	return &Board{
		size:    size,
		squares: make([]Square, size*size),
	}, nil
}

// ParseBoard parses a board from its textual form. Rows are separated by
// either '/' or newlines. 'X' is the player, 'O' is the opponent and any of
// ".-_" is an empty square. Spaces and tabs are ignored, so the output of
// [Board.String] parses back into the same board.
func ParseBoard(s string) (*Board, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' })

	var parsed [][]Square
	for _, row := range rows {
		row = strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\r':
				return -1
			}
			return r
		}, row)
		if row == "" {
			continue
		}

		squares := make([]Square, 0, len(row))
		for _, r := range row {
			switch r {
			case 'X', 'x':
				squares = append(squares, PlayerSquare)
			case 'O', 'o':
				squares = append(squares, OpponentSquare)
			case '.', '-', '_':
				squares = append(squares, EmptySquare)
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidSquare, r)
			}
		}
		parsed = append(parsed, squares)
	}

	b, err := NewBoardSize(len(parsed))
	if err != nil {
		return nil, err
	}
	for r, row := range parsed {
		if len(row) != b.size {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrNotSquare, r, len(row), b.size)
		}
		copy(b.squares[r*b.size:], row)
	}
	return b, nil
}

// Size returns the number of rows (and columns) of the board.
func (b *Board) Size() int {
	return b.size
}

// Contains returns true if the move is within the board.
func (b *Board) Contains(m Move) bool {
	return m.Row >= 0 && m.Row < b.size && m.Column >= 0 && m.Column < b.size
}

func (b *Board) index(m Move) int {
	if !b.Contains(m) {
		panic(fmt.Sprintf("minimax: move %v out of range for %d×%d board", m, b.size, b.size))
	}
	return m.Row*b.size + m.Column
}

// At returns the square at the given move.
// It panics if the move is outside the board.
func (b *Board) At(m Move) Square {
	return b.squares[b.index(m)]
}

// Set sets the square at the given move.
// It panics if the move is outside the board or s is not a valid square.
func (b *Board) Set(m Move, s Square) {
	if s > PlayerSquare {
		panic(fmt.Sprintf("minimax: invalid square %d", s))
	}
	b.squares[b.index(m)] = s
}

// try places s at m, calls f and restores the square to empty afterwards, even
// if f panics.
func (b *Board) try(m Move, s Square, f func()) {
	i := b.index(m)
	b.squares[i] = s
	defer func() { b.squares[i] = EmptySquare }()
	f()
}

// Reset empties every square on the board.
func (b *Board) Reset() {
	clear(b.squares)
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		size:    b.size,
		squares: append([]Square(nil), b.squares...),
	}
}

// Equal returns true if both boards have the same size and squares.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}

// Count returns the number of squares holding s.
func (b *Board) Count(s Square) int {
	var n int
	for _, sq := range b.squares {
		if sq == s {
			n++
		}
	}
	return n
}

// IsEmpty returns true if no square has been played.
func (b *Board) IsEmpty() bool {
	return b.Count(EmptySquare) == len(b.squares)
}

// IsFull returns true if every square has been played.
func (b *Board) IsFull() bool {
	return b.Count(EmptySquare) == 0
}

// EmptySquares iterates over the empty squares row by row, then column by
// column.
//
// The board may be modified while iterating as long as the yielded square is
// empty again by the time the loop body finishes.
func (b *Board) EmptySquares() iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for r := range b.size {
			for c := range b.size {
				if b.squares[r*b.size+c] != EmptySquare {
					continue
				}
				if !yield(Move{r, c}) {
					return
				}
			}
		}
	}
}

// String returns the board as space-separated squares, one row per line.
func (b *Board) String() string {
	var s strings.Builder
	for r := range b.size {
		if r > 0 {
			s.WriteByte('\n')
		}
		for c := range b.size {
			if c > 0 {
				s.WriteByte(' ')
			}
			s.WriteString(b.squares[r*b.size+c].String())
		}
	}
	return s.String()
}
