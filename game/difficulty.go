package game

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Preset holds the board dimensions and mine count of a Difficulty
type Preset struct {
	Rows     int `json:"rows" yaml:"rows"`
	Cols     int `json:"cols" yaml:"cols"`
	NumMines int `json:"mines" yaml:"mines"`
}

var Presets = map[Difficulty]Preset{
	Easy:   {Rows: 8, Cols: 10, NumMines: 10},
	Medium: {Rows: 10, Cols: 12, NumMines: 15},
	Hard:   {Rows: 12, Cols: 16, NumMines: 20},
}

var Difficulties = []Difficulty{Easy, Medium, Hard}

var difficultyNames = map[string]Difficulty{
	"easy":   Easy,
	"medium": Medium,
	"hard":   Hard,
}

func (difficulty Difficulty) String() string {
	for name, d := range difficultyNames {
		if d == difficulty {
			return name
		}
	}
	return "unknown"
}

func (difficulty Difficulty) Preset() Preset {
	return Presets[difficulty]
}

func ParseDifficulty(value string) (Difficulty, error) {
	if difficulty, ok := difficultyNames[strings.ToLower(strings.TrimSpace(value))]; ok {
		return difficulty, nil
	}
	return Medium, errors.Wrapf(ErrUnknownDifficulty, "%q", value)
}

// BoardConfig returns a config for a board of this preset's dimensions
func (preset Preset) BoardConfig() BoardConfig {
	return BoardConfig{
		Rows:     preset.Rows,
		Cols:     preset.Cols,
		NumMines: preset.NumMines,
	}
}
