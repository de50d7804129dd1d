package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrInvalidConfiguration = errors.New("invalid board configuration")

type BoardConfig struct {
	Rows, Cols int
	NumMines   int

	// Seed for mine placement; zero seeds from the clock
	Seed int64

	Logger logrus.FieldLogger
}

func (config BoardConfig) validate() error {
	if config.Rows <= 0 || config.Cols <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "board must be at least 1x1, got %dx%d", config.Rows, config.Cols)
	}
	if config.Rows > math.MaxInt/config.Cols {
		return errors.Wrapf(ErrInvalidConfiguration, "%dx%d board is too large", config.Rows, config.Cols)
	}
	if config.NumMines < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "mine count %d is negative", config.NumMines)
	}
	if config.NumMines >= config.Rows*config.Cols {
		return errors.Wrapf(ErrInvalidConfiguration, "%d mines do not fit in %d cells", config.NumMines, config.Rows*config.Cols)
	}
	return nil
}

type Board struct {
	rows, cols int
	numMines   int
	cells      [][]Cell

	state       BoardState
	numRevealed int
	numFlags    int

	seed int64
	rand *rand.Rand
	log  logrus.FieldLogger
}

// CreateBoard builds a rows x cols board with numMines randomly placed mines
func CreateBoard(rows, cols, numMines int) (*Board, error) {
	return BoardConfig{Rows: rows, Cols: cols, NumMines: numMines}.CreateBoard()
}

func (config BoardConfig) CreateBoard() (*Board, error) {
	board, err := config.createEmptyBoard()
	if err != nil {
		return nil, err
	}

	board.placeMines()
	board.lockCounts()

	board.log.WithFields(logrus.Fields{
		"rows":  board.rows,
		"cols":  board.cols,
		"mines": board.numMines,
		"seed":  board.seed,
	}).Debug("created board")

	return board, nil
}

func (config BoardConfig) createEmptyBoard() (*Board, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	board := &Board{
		state:    Fresh,
		rows:     config.Rows,
		cols:     config.Cols,
		numMines: config.NumMines,
		cells:    make([][]Cell, config.Rows),
		seed:     seed,
		rand:     rand.New(rand.NewSource(seed)),
		log:      logger,
	}

	for row := 0; row < config.Rows; row++ {
		board.cells[row] = make([]Cell, config.Cols)
		for col := 0; col < config.Cols; col++ {
			board.cells[row][col].coord = Coord{Row: row, Col: col}
		}
	}

	return board, nil
}

// placeMines samples coordinates uniformly, rejecting ones already mined
func (board *Board) placeMines() {
	for placed := 0; placed < board.numMines; {
		cell := &board.cells[board.rand.Intn(board.rows)][board.rand.Intn(board.cols)]
		if cell.isMine {
			continue
		}
		cell.isMine = true
		placed++
	}
}

func (board *Board) lockCounts() {
	for row := range board.cells {
		for col := range board.cells[row] {
			board.cells[row][col].numMines, _ = board.AdjacentMineCount(row, col)
		}
	}
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumRevealed() int {
	return board.numRevealed
}

func (board *Board) NumFlags() int {
	return board.numFlags
}

// RemainingMines is the mine counter shown to players; negative when over-flagged
func (board *Board) RemainingMines() int {
	return board.numMines - board.numFlags
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Seed() int64 {
	return board.seed
}

// NextSeed draws a seed for the board that replaces this one
func (board *Board) NextSeed() int64 {
	return board.rand.Int63()
}

func (board *Board) InBounds(coord Coord) bool {
	return coord.Row >= 0 && coord.Col >= 0 && coord.Row < board.rows && coord.Col < board.cols
}

// CellAt returns the cell at row, col, or nil when out of bounds
func (board *Board) CellAt(row, col int) *Cell {
	if !board.InBounds(Coord{Row: row, Col: col}) {
		return nil
	}
	return &board.cells[row][col]
}

func (board *Board) cellAt(coord Coord) *Cell {
	return &board.cells[coord.Row][coord.Col]
}

// Cells calls fn for every cell in row-major order
func (board *Board) Cells(fn func(cell *Cell)) {
	for row := range board.cells {
		for col := range board.cells[row] {
			fn(&board.cells[row][col])
		}
	}
}

// neighbors returns the in-bounds coordinates surrounding coord, excluding coord
func (board *Board) neighbors(coord Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			neighbor := Coord{Row: coord.Row + dRow, Col: coord.Col + dCol}
			if board.InBounds(neighbor) {
				out = append(out, neighbor)
			}
		}
	}
	return out
}

// AdjacentMineCount counts the mines among the neighbors of row, col.
// The second result is false when the coordinate is out of bounds.
func (board *Board) AdjacentMineCount(row, col int) (int, bool) {
	coord := Coord{Row: row, Col: col}
	if !board.InBounds(coord) {
		return 0, false
	}

	count := 0
	for _, neighbor := range board.neighbors(coord) {
		if board.cellAt(neighbor).isMine {
			count++
		}
	}
	return count, true
}

// MineCoords lists every mine in row-major order
func (board *Board) MineCoords() []Coord {
	mines := make([]Coord, 0, board.numMines)
	board.Cells(func(cell *Cell) {
		if cell.isMine {
			mines = append(mines, cell.coord)
		}
	})
	return mines
}

func (board *Board) canPlay() bool {
	return !board.state.IsTerminal()
}

func (board *Board) hasWon() bool {
	return board.numRevealed == board.NumCells()-board.numMines
}
