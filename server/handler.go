package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/game"
)

func respondWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"sessions": s.numSessions(),
	})
}

func (s *Server) numSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) handleDifficulties(c *gin.Context) {
	views := make([]DifficultyView, 0, len(game.Difficulties))
	for _, difficulty := range game.Difficulties {
		views = append(views, DifficultyView{Name: difficulty.String(), Preset: difficulty.Preset()})
	}
	c.JSON(http.StatusOK, views)
}

// gameConfig resolves a create request against the server defaults
func (s *Server) gameConfig(req CreateGameRequest) (game.GameConfig, error) {
	config := s.config
	config.Logger = s.log

	if req.Difficulty != "" {
		difficulty, err := game.ParseDifficulty(req.Difficulty)
		if err != nil {
			return config, err
		}
		config.Difficulty = difficulty
		config.Rows, config.Cols, config.NumMines = 0, 0, 0
	}
	if req.Rows != 0 || req.Cols != 0 || req.Mines != 0 {
		config.Rows, config.Cols, config.NumMines = req.Rows, req.Cols, req.Mines
		if config.Rows > 0 && config.Cols > 0 && config.Rows > s.maxCells/config.Cols {
			return config, errors.Wrapf(game.ErrInvalidConfiguration, "%dx%d board exceeds %d cells", config.Rows, config.Cols, s.maxCells)
		}
	}
	return config, nil
}

func (s *Server) handleCreateGame(c *gin.Context) {
	var req CreateGameRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, err)
			return
		}
	}

	config, err := s.gameConfig(req)
	if err != nil {
		respondWithError(c, http.StatusBadRequest, err)
		return
	}

	board, err := config.CreateBoard()
	if err != nil {
		respondWithError(c, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessions.add(config, board)
	s.log.WithFields(logrus.Fields{
		"session": session.id,
		"rows":    board.Rows(),
		"cols":    board.Cols(),
		"mines":   board.NumMines(),
	}).Info("game created")

	c.JSON(http.StatusCreated, s.view(session))
}

// withSession runs fn holding the server lock, or responds 404
func (s *Server) withSession(c *gin.Context, fn func(*gameSession)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[c.Param("id")]
	if !ok {
		respondWithError(c, http.StatusNotFound, errors.Errorf("game %s not found", c.Param("id")))
		return
	}
	fn(session)
}

func (s *Server) handleGetGame(c *gin.Context) {
	s.withSession(c, func(session *gameSession) {
		c.JSON(http.StatusOK, s.view(session))
	})
}

func (s *Server) handleDeleteGame(c *gin.Context) {
	s.withSession(c, func(session *gameSession) {
		delete(s.sessions, session.id)
		c.Status(http.StatusNoContent)
	})
}

func (s *Server) handleReveal(c *gin.Context) {
	var req CoordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err)
		return
	}

	s.withSession(c, func(session *gameSession) {
		before := session.board.State()
		result := session.board.RevealCell(*req.Row, *req.Col)
		now := s.now()
		session.observe(before, now)

		if result.Outcome != game.Continue {
			s.log.WithFields(logrus.Fields{
				"session": session.id,
				"outcome": result.Outcome,
				"seconds": int(session.elapsed(now).Seconds()),
			}).Info("game over")
		}

		c.JSON(http.StatusOK, RevealResponse{
			RevealResult:   result,
			State:          session.board.State(),
			ElapsedSeconds: int(session.elapsed(now).Seconds()),
		})
	})
}

func (s *Server) handleFlag(c *gin.Context) {
	var req CoordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err)
		return
	}

	s.withSession(c, func(session *gameSession) {
		flagged, changed := session.board.ToggleFlag(*req.Row, *req.Col)
		c.JSON(http.StatusOK, FlagResponse{
			Flagged:        flagged,
			Changed:        changed,
			RemainingMines: session.board.RemainingMines(),
		})
	})
}

func (s *Server) handleNewGame(c *gin.Context) {
	s.withSession(c, func(session *gameSession) {
		if err := session.replace(); err != nil {
			respondWithError(c, http.StatusInternalServerError, err)
			return
		}
		c.JSON(http.StatusOK, s.view(session))
	})
}

func (s *Server) view(session *gameSession) GameView {
	board := session.board
	lost := board.State() == game.Lost

	view := GameView{
		ID:             session.id,
		State:          board.State(),
		Rows:           board.Rows(),
		Cols:           board.Cols(),
		Mines:          board.NumMines(),
		RemainingMines: board.RemainingMines(),
		ElapsedSeconds: int(session.elapsed(s.now()).Seconds()),
		Cells:          make([][]CellView, board.Rows()),
	}

	for row := range view.Cells {
		view.Cells[row] = make([]CellView, board.Cols())
	}
	board.Cells(func(cell *game.Cell) {
		coord := cell.Coord()
		view.Cells[coord.Row][coord.Col] = cellView(cell, lost)
	})
	return view
}

func cellView(cell *game.Cell, lost bool) CellView {
	switch {
	case cell.IsExploded():
		return CellView{State: cellExploded}
	case lost && cell.IsMine():
		return CellView{State: cellMine}
	case cell.IsRevealed():
		return CellView{State: cellOpened, Count: cell.AdjacentMines()}
	case cell.IsFlagged():
		return CellView{State: cellFlagged}
	default:
		return CellView{State: cellHidden}
	}
}
