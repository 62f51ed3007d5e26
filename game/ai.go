package game

import (
	"log/slog"

	"github.com/twipi/tttminimax/minimax"
)

// AI represents an AI player.
// The AI is implemented using the minimax algorithm.
type AI struct {
	game   *Game
	player Player
	logger *slog.Logger
}

// NewAI creates a new AI player. If logger is nil, [slog.Default] is used.
func NewAI(g *Game, p Player, logger *slog.Logger) *AI {
	if logger == nil {
		logger = slog.Default()
	}
	return &AI{game: g, player: p, logger: logger}
}

// Player returns the player that the AI plays as.
func (a *AI) Player() Player {
	return a.player
}

// NextMove returns the next move that the AI should make.
// If it is not the AI's turn or the game is over, return false.
func (a *AI) NextMove() (BoardPosition, bool) {
	if a.game.Turn() != a.player {
		return BoardPosition{}, false
	}

	move, ok := minimax.ComputeNextMove(a.game.Board, a.player == Player1)
	if !ok {
		return BoardPosition{}, false
	}

	a.logger.Debug(
		"computed next move",
		"player", a.player,
		"turn", a.game.Turns,
		"move", move)

	return positionFromMove(move), true
}

// MakeMove makes the next move for the AI.
// Returns true if the move was made successfully.
func (a *AI) MakeMove() bool {
	pos, ok := a.NextMove()
	if !ok {
		return false
	}
	return a.game.MakeMove(pos)
}

// Hint searches the current position for the given player, regardless of
// whose turn it is.
func (a *AI) Hint(p Player) minimax.Analysis {
	analysis := minimax.Analyze(a.game.Board, p == Player1)

	a.logger.Debug(
		"analyzed position",
		"player", p,
		"best", analysis.Move,
		"score", analysis.Score,
		"nodes", analysis.Nodes)

	return analysis
}
