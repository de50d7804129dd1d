package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/gosweep/game"
)

func TestGeneratePrintsSnapshot(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--difficulty", "easy", "--seed", "4"})
	require.NoError(t, rootCmd.Execute())

	snapshot, err := game.LoadSnapshot(out.String())
	require.NoError(t, err)
	assert.Equal(t, int64(4), snapshot.Seed)

	board, err := snapshot.CreateBoard(true, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, board.Rows())
	assert.Equal(t, 10, board.Cols())
	assert.Equal(t, 10, board.NumMines())
}

func TestAutoplayFinishesEveryGame(t *testing.T) {
	gameConfig := game.NewGameConfig()
	gameConfig.Seed = 11

	results, err := autoplay(gameConfig, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, results[game.Won]+results[game.Lost])
}

func TestDifficultyValue(t *testing.T) {
	var difficulty game.Difficulty
	value := newDifficultyValue(game.Easy, &difficulty)
	assert.Equal(t, "easy", value.String())

	require.NoError(t, value.Set("hard"))
	assert.Equal(t, game.Hard, difficulty)
	assert.Error(t, value.Set("extreme"))
}
