package minimax

import "fmt"

// ScoredMove is a move together with the minimax score of playing it.
type ScoredMove struct {
	Move  Move
	Score Score
}

// Analysis is the result of a full search from a single position.
type Analysis struct {
	// Move is the best move for the side to move. It is only meaningful if
	// Ended is false.
	Move Move
	// Score is the minimax score of the position.
	Score Score
	// Moves lists every legal move and its score in the order the moves were
	// explored.
	Moves []ScoredMove
	// Nodes is the number of positions visited by the search.
	Nodes int
	// Ended is true if the position was already a win or a draw.
	Ended bool
}

// ComputeNextMove returns the best move on the board for the player if
// isPlayerSide is true, or for the opponent otherwise.
//
// An empty board always gets the top-left square without searching. If the
// game on the board is already over, false is returned.
//
// The board is used as scratch space during the search and is left exactly as
// it was passed in.
func ComputeNextMove(b *Board, isPlayerSide bool) (Move, bool) {
	m, _, ok := computeNextMove(b, isPlayerSide)
	return m, ok
}

func computeNextMove(b *Board, isPlayerSide bool) (move Move, nodes int, ok bool) {
	if b.IsEmpty() {
		return Move{0, 0}, 0, true
	}
	a := Analyze(b, isPlayerSide)
	return a.Move, a.Nodes, !a.Ended
}

// Analyze searches every continuation of the board and reports the score of
// each move available to the side to move.
func Analyze(b *Board, isPlayerSide bool) Analysis {
	var a Analysis
	s := searcher{}
	a.Score, a.Move = s.minimax(b, isPlayerSide, 0, func(m ScoredMove) {
		a.Moves = append(a.Moves, m)
	})
	a.Nodes = s.nodes
	a.Ended = len(a.Moves) == 0
	return a
}

type searcher struct {
	nodes int
}

// minimax returns the best score reachable from b and the move leading to it.
// The player maximizes and the opponent minimizes; ties keep the move found
// first. If visit is not nil, it is called with every move explored at this
// level.
func (s *searcher) minimax(b *Board, isPlayerTurn bool, depth int, visit func(ScoredMove)) (Score, Move) {
	s.nodes++

	if score := ComputeBoardScore(b, depth); IsGameOver(score) {
		return score, Move{}
	}

	mark := OpponentSquare
	if isPlayerTurn {
		mark = PlayerSquare
	}

	var best ScoredMove
	var found bool

	for m := range b.EmptySquares() {
		var score Score
		b.try(m, mark, func() {
			score, _ = s.minimax(b, !isPlayerTurn, depth+1, nil)
		})

		if visit != nil {
			visit(ScoredMove{m, score})
		}

		if !found || (isPlayerTurn && score > best.Score) || (!isPlayerTurn && score < best.Score) {
			best = ScoredMove{m, score}
			found = true
		}
	}

	if !found {
		// A board without empty squares always scores as a win or a draw.
		panic(fmt.Sprintf("minimax: no moves on unfinished board:\n%v", b))
	}

	return best.Score, best.Move
}
