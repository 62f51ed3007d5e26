package minimax

import (
	"math"
	"strconv"
)

// Score is the value of a board position from the player's point of view.
type Score int32

const (
	PlayerWinningScore   Score = 100
	OpponentWinningScore Score = -100
	DrawScore            Score = 0

	// NotEndgame marks a board that has neither a winner nor filled all its
	// squares. It lies outside every other score band.
	NotEndgame Score = math.MinInt32
)

func (s Score) String() string {
	if s == NotEndgame {
		return "not-endgame"
	}
	return strconv.Itoa(int(s))
}

// IsGameOver returns true if the score describes a finished game.
func IsGameOver(score Score) bool {
	return score != NotEndgame
}

// ComputeBoardScore scores the board as seen at the given search depth.
//
// A completed line for the player scores PlayerWinningScore-depth and one for
// the opponent scores OpponentWinningScore+depth, so that wins found sooner
// and losses found later are preferred. A full board without a completed line
// is a draw. Any other board scores NotEndgame.
//
// Lines are checked rows first, then columns, then diagonals, and the first
// completed line decides the result.
func ComputeBoardScore(b *Board, depth int) Score {
	n := b.size

	rows := make([]int, n)
	cols := make([]int, n)
	var diag, antiDiag int
	var emptySquaresExist bool

	for r := range n {
		for c := range n {
			var delta int
			switch b.squares[r*n+c] {
			case PlayerSquare:
				delta = 1
			case OpponentSquare:
				delta = -1
			default:
				emptySquaresExist = true
				continue
			}

			rows[r] += delta
			cols[c] += delta
			if r == c {
				diag += delta
			}
			if c == n-1-r {
				antiDiag += delta
			}
		}
	}

	playerWins := PlayerWinningScore - Score(depth)
	opponentWins := OpponentWinningScore + Score(depth)

	for _, counts := range [][]int{rows, cols} {
		for _, count := range counts {
			switch count {
			case n:
				return playerWins
			case -n:
				return opponentWins
			}
		}
	}

	if diag == n || antiDiag == n {
		return playerWins
	}
	if diag == -n || antiDiag == -n {
		return opponentWins
	}

	if emptySquaresExist {
		return NotEndgame
	}
	return DrawScore
}
