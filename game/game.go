package game

import "github.com/sirupsen/logrus"

// GameConfig describes how every board of a session is created. Custom
// dimensions, when all set, take precedence over the difficulty preset.
type GameConfig struct {
	Difficulty Difficulty

	Rows, Cols int
	NumMines   int

	Seed int64

	Logger logrus.FieldLogger
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Difficulty: Medium,
	}
}

func (config GameConfig) isCustom() bool {
	return config.Rows > 0 || config.Cols > 0 || config.NumMines > 0
}

func (config GameConfig) BoardConfig() BoardConfig {
	boardConfig := config.Difficulty.Preset().BoardConfig()
	if config.isCustom() {
		boardConfig = BoardConfig{
			Rows:     config.Rows,
			Cols:     config.Cols,
			NumMines: config.NumMines,
		}
	}
	boardConfig.Seed = config.Seed
	boardConfig.Logger = config.Logger
	return boardConfig
}

func (config GameConfig) CreateBoard() (*Board, error) {
	return config.BoardConfig().CreateBoard()
}
