package server

import (
	"time"

	"github.com/google/uuid"

	"github.com/they4kman/gosweep/game"
)

// gameSession holds the single live board of one player and its wall-clock timer
type gameSession struct {
	id     string
	config game.GameConfig
	board  *game.Board

	startedAt, endedAt time.Time
}

// observe starts the timer on the first reveal and stops it when the game ends
func (s *gameSession) observe(before game.BoardState, now time.Time) {
	after := s.board.State()
	if before == game.Fresh && after != game.Fresh {
		s.startedAt = now
	}
	if !before.IsTerminal() && after.IsTerminal() {
		s.endedAt = now
	}
}

func (s *gameSession) elapsed(now time.Time) time.Duration {
	switch {
	case s.startedAt.IsZero():
		return 0
	case !s.endedAt.IsZero():
		return s.endedAt.Sub(s.startedAt)
	default:
		return now.Sub(s.startedAt)
	}
}

// replace discards the board for a freshly generated one
func (s *gameSession) replace() error {
	s.config.Seed = s.board.NextSeed()
	board, err := s.config.CreateBoard()
	if err != nil {
		return err
	}
	s.board = board
	s.startedAt, s.endedAt = time.Time{}, time.Time{}
	return nil
}

type sessionStore map[string]*gameSession

func (store sessionStore) add(config game.GameConfig, board *game.Board) *gameSession {
	s := &gameSession{
		id:     uuid.NewString(),
		config: config,
		board:  board,
	}
	store[s.id] = s
	return s
}
