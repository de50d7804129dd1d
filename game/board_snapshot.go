package game

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// BoardSnapshot is a textual picture of a board, one line per row:
//
//	#  hidden      .  revealed    f  flagged
//	O  mine        F  flagged mine    *  exploded mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board"`
}

func (board *Board) Snapshot() *BoardSnapshot {
	var serialized strings.Builder
	for row := range board.cells {
		if row > 0 {
			serialized.WriteByte('\n')
		}
		for col := range board.cells[row] {
			serialized.WriteByte(board.cells[row][col].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: serialized.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "marshal snapshot")
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "unmarshal snapshot")
	}
	return &snapshot, nil
}

// CreateBoard rebuilds the pictured board. With fresh set, only mine
// positions are kept and every cell starts hidden and unflagged.
func (snapshot *BoardSnapshot) CreateBoard(fresh bool, logger logrus.FieldLogger) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	numMines := strings.Count(snapshot.SerializedBoard, "O") +
		strings.Count(snapshot.SerializedBoard, "F") +
		strings.Count(snapshot.SerializedBoard, "*")

	config := BoardConfig{
		Rows:     len(rows),
		Cols:     len(strings.TrimSpace(rows[0])),
		NumMines: numMines,
		Seed:     snapshot.Seed,
		Logger:   logger,
	}
	board, err := config.createEmptyBoard()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSnapshot, err.Error())
	}

	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != board.cols {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells, want %d", row, len(line), board.cols)
		}
		for col, c := range line {
			if !board.cells[row][col].deserialize(c, fresh) {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell %q at (%d, %d)", c, row, col)
			}
		}
	}

	board.lockCounts()
	board.restoreState()

	return board, nil
}

func (board *Board) restoreState() {
	exploded := false
	board.Cells(func(cell *Cell) {
		if cell.isFlagged {
			board.numFlags++
		}
		if cell.isExploded {
			exploded = true
		} else if cell.isRevealed {
			board.numRevealed++
		}
	})

	switch {
	case exploded:
		board.state = Lost
	case board.hasWon():
		board.state = Won
	case board.numRevealed > 0:
		board.state = InProgress
	default:
		board.state = Fresh
	}
}
