package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "embed"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/twipi/pubsub"
	"github.com/twipi/twipi/proto/out/twicmdproto"
	"github.com/twipi/twipi/proto/out/twismsproto"
	"github.com/twipi/twipi/twicmd"
	"github.com/twipi/twipi/twisms"
	"github.com/twipi/tttminimax/config"
	"github.com/twipi/tttminimax/game"
	"github.com/twipi/tttminimax/minimax"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/encoding/prototext"
)

//go:embed service.txtpb
var servicePrototext []byte

var service = (func() *twicmdproto.Service {
	service := new(twicmdproto.Service)
	if err := prototext.Unmarshal(servicePrototext, service); err != nil {
		panic(fmt.Sprintf("failed to unmarshal service proto: %v", err))
	}
	return service
})()

type runningGame struct {
	// mu guards the game. The AI searches on the game's own board, so only one
	// command may touch a game at a time.
	mu sync.Mutex
	*game.Game
	AI        *game.AI
	Human     game.Player
	StartedAt time.Time
}

// Service is the main running Tic-tac-toe Twicmd service.
type Service struct {
	sendCh  chan *twismsproto.Message
	sendSub pubsub.Subscriber[*twismsproto.Message]
	games   *xsync.MapOf[string, *runningGame]
	config  config.Config
	logger  *slog.Logger
}

var (
	_ twicmd.Service           = (*Service)(nil)
	_ twisms.MessageSubscriber = (*Service)(nil)
)

func NewService(logger *slog.Logger, cfg config.Config) *Service {
	return &Service{
		sendCh: make(chan *twismsproto.Message),
		games:  xsync.NewMapOf[string, *runningGame](),
		config: cfg,
		logger: logger,
	}
}

// Name implements [twicmd.Service].
func (s *Service) Name() string {
	return service.Name
}

// Service implements [twicmd.Service].
func (s *Service) Service(ctx context.Context) (*twicmdproto.Service, error) {
	return service, nil
}

// Execute implements [twicmd.Service].
func (s *Service) Execute(ctx context.Context, req *twicmdproto.ExecuteRequest) (*twicmdproto.ExecuteResponse, error) {
	args := twicmd.MapArguments(req.Command.Arguments)

	switch req.Command.Command {
	case "start":
		s.logger.Debug(
			"starting new game",
			"phone_number", req.Message.From,
			"first", args["first"])

		aiFirst, err := parseFirst(args["first"])
		if err != nil {
			return twicmd.StatusResponse(`Invalid first player. Please use "me" or "ai".`), nil
		}

		human := game.Player1
		if aiFirst {
			human = game.Player2
		}

		gm := game.NewGame()
		rg := &runningGame{
			Game:      gm,
			AI:        game.NewAI(gm, human.Opponent(), s.logger.With("phone_number", req.Message.From)),
			Human:     human,
			StartedAt: time.Now(),
		}

		rg.mu.Lock()
		defer rg.mu.Unlock()

		_, overridden := s.games.LoadAndStore(req.Message.From, rg)

		var msg string
		if overridden {
			msg = "An existing game was overridden. A new game has started."
		} else {
			msg = "A new game has started."
		}

		if aiFirst {
			s.sendCh <- twisms.NewReplyingMessage(req.Message, twisms.NewTextBody(msg))
			rg.AI.MakeMove()
			s.sendCh <- twisms.NewReplyingMessage(req.Message, drawBoardMessage("The AI opened with:", rg.Board, human))
			return twicmd.TextResponse("It is now your turn."), nil
		}

		s.sendCh <- twisms.NewReplyingMessage(req.Message, twisms.NewTextBody(msg+" It is now your turn."))
		s.sendCh <- twisms.NewReplyingMessage(req.Message, drawBoardMessage("", rg.Board, human))
		return nil, nil

	case "place":
		s.logger.Debug(
			"placing piece",
			"phone_number", req.Message.From,
			"position", args["position"])

		gm, ok := s.games.Load(req.Message.From)
		if !ok {
			return twicmd.StatusResponse("No game found. Please start a new game."), nil
		}

		gm.mu.Lock()
		defer gm.mu.Unlock()

		size := gm.Board.Size()
		bpos, err := parsePosition(args["position"], size)
		if err != nil {
			return twicmd.StatusResponse(fmt.Sprintf("Invalid position. Please provide a number between 1 and %d.", size*size)), nil
		}

		if _, ended := gm.GameState(); ended {
			return twicmd.StatusResponse("The game is over. Please start a new game."), nil
		}

		msgs := []string{
			"You just placed:",
			"In return, the AI placed:",
		}

		for i, move := range []func() bool{
			func() bool { return gm.Turn() == gm.Human && gm.MakeMove(bpos) },
			func() bool { return gm.AI.MakeMove() },
		} {
			if !move() {
				return twicmd.StatusResponse("Invalid move. Please try again."), nil
			}

			s.sendCh <- twisms.NewReplyingMessage(req.Message, drawBoardMessage(msgs[i], gm.Board, gm.Human))

			if winner, ended := gm.GameState(); ended {
				s.logger.Debug(
					"game over",
					"phone_number", req.Message.From,
					"winner", winner)
				return twicmd.TextResponse(outcomeText(winner)), nil
			}
		}

		return nil, nil

	case "hint":
		gm, ok := s.games.Load(req.Message.From)
		if !ok {
			return twicmd.StatusResponse("No game found. Please start a new game."), nil
		}

		gm.mu.Lock()
		defer gm.mu.Unlock()

		if _, ended := gm.GameState(); ended {
			return twicmd.StatusResponse("The game is over. Please start a new game."), nil
		}

		analysis := gm.AI.Hint(gm.Human)
		return twicmd.TextResponse(hintText(analysis, gm.Board, gm.Human)), nil

	case "stop":
		if _, ok := s.games.LoadAndDelete(req.Message.From); !ok {
			return twicmd.StatusResponse("No game found."), nil
		}
		return twicmd.TextResponse("The game was stopped."), nil

	default:
		return nil, fmt.Errorf("unknown command: %q", req.Command.Command)
	}
}

func drawBoardMessage(prefix string, board *minimax.Board, human game.Player) *twismsproto.MessageBody {
	return twisms.NewTextBody(renderBoard(prefix, board, human))
}

func (s *Service) Start(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)

	errg.Go(func() error {
		return s.sendSub.Listen(ctx, s.sendCh)
	})

	errg.Go(func() error {
		ticker := time.NewTicker(s.config.CleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()

			case now := <-ticker.C:
				s.removeExpired(now)
			}
		}
	})

	return errg.Wait()
}

func (s *Service) removeExpired(now time.Time) {
	s.games.Range(func(key string, value *runningGame) bool {
		if value.StartedAt.Add(s.config.GameExpiry).Before(now) {
			s.logger.Debug(
				"game expired, deleting",
				"phone_number", key,
				"started_at", value.StartedAt)
			s.games.Delete(key)
		}
		return true
	})
}

// SubscribeMessages implements [twisms.MessageSubscriber].
func (s *Service) SubscribeMessages(ch chan<- *twismsproto.Message, filters *twismsproto.MessageFilters) {
	s.sendSub.Subscribe(ch, func(msg *twismsproto.Message) bool {
		return twisms.FilterMessage(filters, msg)
	})
}

// UnsubscribeMessages implements [twisms.MessageSubscriber].
func (s *Service) UnsubscribeMessages(ch chan<- *twismsproto.Message) {
	s.sendSub.Unsubscribe(ch)
}
