package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/twipi/tttminimax/game"
	"github.com/twipi/tttminimax/minimax"
)

var playerUnicode = map[game.Player]string{
	game.Player1:  "❌",
	game.Player2:  "⚫",
	game.NoPlayer: "⬜",
}

func renderBoard(prefix string, board *minimax.Board, human game.Player) string {
	var s strings.Builder
	if prefix != "" {
		s.WriteString(prefix)
		s.WriteString("\n\n")
	}
	size := board.Size()
	for r := range size {
		for c := range size {
			s.WriteString(playerUnicode[game.PlayerAt(board.At(minimax.Move{Row: r, Column: c}))])
		}
		s.WriteString("\n")
	}
	fmt.Fprintf(&s, "%s is your piece.\n", playerUnicode[human])
	fmt.Fprintf(&s, "%s is the AI's piece.", playerUnicode[human.Opponent()])
	return s.String()
}

// parseFirst parses who should move first. It returns true if the AI should.
func parseFirst(arg string) (aiFirst bool, err error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "me", "human", "you":
		return false, nil
	case "ai", "bot", "computer":
		return true, nil
	default:
		return false, fmt.Errorf("unknown first player %q", arg)
	}
}

// parsePosition parses a 1-based square number on a size×size board.
func parsePosition(arg string, size int) (game.BoardPosition, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return game.BoardPosition{}, errors.New("position is not a number")
	}
	return game.BoardPositionFromIndex(n-1, size)
}

func outcomeText(winner game.Player) string {
	if winner != game.NoPlayer {
		return fmt.Sprintf("The game is over. %s wins!", playerUnicode[winner])
	}
	return "The game is over. It's a draw!"
}

// hintText describes the best square for the human and what every empty
// square leads to with perfect play.
func hintText(a minimax.Analysis, board *minimax.Board, human game.Player) string {
	outcomes := make(map[minimax.Move]string, len(a.Moves))
	for _, m := range a.Moves {
		outcomes[m.Move] = outcomeUnicode[outcomeFor(m.Score, human)]
	}

	var s strings.Builder
	size := board.Size()
	fmt.Fprintf(&s, "Try square %d.\n\n", a.Move.Row*size+a.Move.Column+1)

	for r := range size {
		for c := range size {
			m := minimax.Move{Row: r, Column: c}
			if o, ok := outcomes[m]; ok {
				s.WriteString(o)
			} else {
				s.WriteString(playerUnicode[game.PlayerAt(board.At(m))])
			}
		}
		s.WriteString("\n")
	}
	s.WriteString("🟩 wins, 🟨 draws and 🟥 loses with perfect play.")
	return s.String()
}

type outcome uint8

const (
	outcomeDraw outcome = iota
	outcomeWin
	outcomeLoss
)

var outcomeUnicode = map[outcome]string{
	outcomeWin:  "🟩",
	outcomeDraw: "🟨",
	outcomeLoss: "🟥",
}

// outcomeFor classifies a score from the human's point of view. Scores are
// always from X's point of view.
func outcomeFor(score minimax.Score, human game.Player) outcome {
	if human == game.Player2 {
		score = -score
	}
	switch {
	case score > minimax.DrawScore:
		return outcomeWin
	case score < minimax.DrawScore:
		return outcomeLoss
	default:
		return outcomeDraw
	}
}
