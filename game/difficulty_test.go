package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	assert.Equal(t, Preset{Rows: 8, Cols: 10, NumMines: 10}, Easy.Preset())
	assert.Equal(t, Preset{Rows: 10, Cols: 12, NumMines: 15}, Medium.Preset())
	assert.Equal(t, Preset{Rows: 12, Cols: 16, NumMines: 20}, Hard.Preset())

	for _, difficulty := range Difficulties {
		preset := difficulty.Preset()
		assert.Less(t, preset.NumMines, preset.Rows*preset.Cols, "%v", difficulty)
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, difficulty := range Difficulties {
		parsed, err := ParseDifficulty(difficulty.String())
		require.NoError(t, err)
		assert.Equal(t, difficulty, parsed)
	}

	parsed, err := ParseDifficulty(" HARD ")
	require.NoError(t, err)
	assert.Equal(t, Hard, parsed)

	_, err = ParseDifficulty("impossible")
	assert.True(t, errors.Is(err, ErrUnknownDifficulty))
}

func TestGameConfigBoardConfig(t *testing.T) {
	config := NewGameConfig()
	config.Difficulty = Easy
	config.Seed = 9

	boardConfig := config.BoardConfig()
	assert.Equal(t, 8, boardConfig.Rows)
	assert.Equal(t, 10, boardConfig.Cols)
	assert.Equal(t, 10, boardConfig.NumMines)
	assert.Equal(t, int64(9), boardConfig.Seed)

	config.Rows, config.Cols, config.NumMines = 3, 4, 2
	board, err := config.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, 3, board.Rows())
	assert.Equal(t, 4, board.Cols())
	assert.Equal(t, 2, board.NumMines())

	config.Cols = 0
	_, err = config.CreateBoard()
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
