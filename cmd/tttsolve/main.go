// Command tttsolve prints the minimax analysis of tic-tac-toe boards.
//
// Boards are given as rows separated by slashes, for example:
//
//	tttsolve --side x 'O.X/X../XOO'
//
// Without arguments, a set of sample boards is analyzed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/twipi/tttminimax/minimax"
)

var (
	side    = ""
	verbose = false
)

// sampleBoards are analyzed when no board is given.
var sampleBoards = []struct {
	board string
	side  string
}{
	{"O.X/X../XOO", "x"},
	{"O.X/.../X.O", "x"},
	{"O../O../X.X", "x"},
	{"O../.../X.X", "o"},
	{"XX./.O./...", "o"},
}

func init() {
	pflag.StringVarP(&side, "side", "s", side, "side to move (x or o); inferred from the board if empty")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "print the score of every move")
}

func main() {
	pflag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if pflag.NArg() == 0 {
		for _, sample := range sampleBoards {
			if err := solve(os.Stdout, sample.board, sample.side); err != nil {
				logger.Error(
					"failed to solve sample board",
					"board", sample.board,
					"err", err)
				os.Exit(1)
			}
		}
		return
	}

	for _, board := range pflag.Args() {
		if err := solve(os.Stdout, board, side); err != nil {
			logger.Error(
				"failed to solve board",
				"board", board,
				"err", err)
			os.Exit(1)
		}
	}
}

func solve(w io.Writer, s, side string) error {
	b, err := minimax.ParseBoard(s)
	if err != nil {
		return err
	}

	isPlayerSide, err := parseSide(side, b)
	if err != nil {
		return err
	}

	mover := minimax.OpponentSquare
	if isPlayerSide {
		mover = minimax.PlayerSquare
	}

	fmt.Fprintf(w, "%v to move:\n%v\n", mover, b)

	if verbose {
		a := minimax.Analyze(b, isPlayerSide)
		for _, m := range a.Moves {
			fmt.Fprintf(w, "  move %v score %v\n", m.Move, m.Score)
		}
		fmt.Fprintf(w, "  searched %d positions\n", a.Nodes)
	}

	move, ok := minimax.ComputeNextMove(b, isPlayerSide)
	if !ok {
		score := minimax.ComputeBoardScore(b, 0)
		fmt.Fprintf(w, "game is over (score %v)\n\n", score)
		return nil
	}

	fmt.Fprintf(w, "next move: %v\n\n", move)
	return nil
}

// parseSide returns whether X is to move. X moves first, so an empty side is
// inferred from the number of marks on the board.
func parseSide(side string, b *minimax.Board) (bool, error) {
	switch strings.ToLower(side) {
	case "x":
		return true, nil
	case "o":
		return false, nil
	case "":
		return b.Count(minimax.PlayerSquare) <= b.Count(minimax.OpponentSquare), nil
	default:
		return false, fmt.Errorf("invalid side %q: must be x or o", side)
	}
}
