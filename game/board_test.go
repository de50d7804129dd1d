package game

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromPicture(t *testing.T, picture ...string) *Board {
	t.Helper()
	snapshot := &BoardSnapshot{Seed: 1, SerializedBoard: strings.Join(picture, "\n")}
	board, err := snapshot.CreateBoard(false, nil)
	require.NoError(t, err)
	return board
}

func countMines(board *Board) int {
	mines := 0
	board.Cells(func(cell *Cell) {
		if cell.IsMine() {
			mines++
		}
	})
	return mines
}

func TestCreateBoardPlacesExactMineCount(t *testing.T) {
	configs := []BoardConfig{
		{Rows: 1, Cols: 1, NumMines: 0},
		{Rows: 1, Cols: 2, NumMines: 1},
		{Rows: 8, Cols: 10, NumMines: 10},
		{Rows: 5, Cols: 5, NumMines: 24},
		{Rows: 30, Cols: 16, NumMines: 99},
	}

	for _, config := range configs {
		for seed := int64(1); seed <= 10; seed++ {
			config.Seed = seed
			board, err := config.CreateBoard()
			require.NoError(t, err)

			assert.Equal(t, config.NumMines, countMines(board))
			assert.Len(t, board.MineCoords(), config.NumMines)
			assert.Equal(t, config.Rows*config.Cols-config.NumMines, board.NumCells()-countMines(board))
			assert.Equal(t, Fresh, board.State())
			assert.Zero(t, board.NumRevealed())
			assert.Zero(t, board.NumFlags())
		}
	}
}

func TestCreateBoardRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		rows, cols, mine int
	}{
		{"mines fill board", 2, 2, 4},
		{"more mines than cells", 2, 2, 5},
		{"zero rows", 0, 3, 0},
		{"negative cols", 3, -1, 0},
		{"negative mines", 3, 3, -1},
		{"overflowing size", math.MaxInt/2 + 1, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := CreateBoard(tt.rows, tt.cols, tt.mine)
			assert.Nil(t, board)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}
}

func TestCreateBoardIsDeterministicForSeed(t *testing.T) {
	config := BoardConfig{Rows: 12, Cols: 16, NumMines: 20, Seed: 42}
	first, err := config.CreateBoard()
	require.NoError(t, err)
	second, err := config.CreateBoard()
	require.NoError(t, err)

	assert.Equal(t, first.MineCoords(), second.MineCoords())
	assert.Equal(t, int64(42), first.Seed())
}

func TestAdjacentMineCountMatchesNeighbors(t *testing.T) {
	board, err := BoardConfig{Rows: 10, Cols: 12, NumMines: 40, Seed: 7}.CreateBoard()
	require.NoError(t, err)

	board.Cells(func(cell *Cell) {
		expected := 0
		for dRow := -1; dRow <= 1; dRow++ {
			for dCol := -1; dCol <= 1; dCol++ {
				if dRow == 0 && dCol == 0 {
					continue
				}
				if neighbor := board.CellAt(cell.coord.Row+dRow, cell.coord.Col+dCol); neighbor != nil && neighbor.IsMine() {
					expected++
				}
			}
		}

		count, ok := board.AdjacentMineCount(cell.coord.Row, cell.coord.Col)
		require.True(t, ok)
		assert.Equal(t, expected, count, "cell %v", cell.coord)
		assert.Equal(t, expected, cell.AdjacentMines(), "cell %v", cell.coord)
	})
}

func TestAdjacentMineCountIgnoresOwnMine(t *testing.T) {
	board := boardFromPicture(t,
		"OO#",
		"###",
	)

	count, _ := board.AdjacentMineCount(0, 0)
	assert.Equal(t, 1, count)
	count, _ = board.AdjacentMineCount(1, 1)
	assert.Equal(t, 2, count)
	count, _ = board.AdjacentMineCount(1, 2)
	assert.Equal(t, 1, count)
}

func TestAdjacentMineCountOutOfBounds(t *testing.T) {
	board, err := CreateBoard(2, 2, 1)
	require.NoError(t, err)

	for _, coord := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, ok := board.AdjacentMineCount(coord.Row, coord.Col)
		assert.False(t, ok, "coord %v", coord)
		assert.Nil(t, board.CellAt(coord.Row, coord.Col))
	}
}

func TestMineCoordsRowMajor(t *testing.T) {
	board := boardFromPicture(t,
		"#O#",
		"O##",
		"##O",
	)

	assert.Equal(t, []Coord{{0, 1}, {1, 0}, {2, 2}}, board.MineCoords())
}
