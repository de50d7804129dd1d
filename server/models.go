package server

import "github.com/they4kman/gosweep/game"

type CreateGameRequest struct {
	Difficulty string `json:"difficulty"`
	Rows       int    `json:"rows"`
	Cols       int    `json:"cols"`
	Mines      int    `json:"mines"`
}

type CoordRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

const (
	cellHidden   = "hidden"
	cellFlagged  = "flagged"
	cellOpened   = "opened"
	cellMine     = "mine"
	cellExploded = "exploded"
)

type CellView struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

type GameView struct {
	ID             string          `json:"id"`
	State          game.BoardState `json:"state"`
	Rows           int             `json:"rows"`
	Cols           int             `json:"cols"`
	Mines          int             `json:"mines"`
	RemainingMines int             `json:"remainingMines"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
	Cells          [][]CellView    `json:"cells"`
}

type RevealResponse struct {
	game.RevealResult
	State          game.BoardState `json:"state"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
}

type FlagResponse struct {
	Flagged        bool `json:"flagged"`
	Changed        bool `json:"changed"`
	RemainingMines int  `json:"remainingMines"`
}

type DifficultyView struct {
	Name string `json:"name"`
	game.Preset
}

type ErrorResponse struct {
	Error string `json:"error"`
}
