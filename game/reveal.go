package game

import "github.com/sirupsen/logrus"

type RevealedCell struct {
	Coord
	AdjacentMines int `json:"count"`
}

type RevealResult struct {
	Outcome Outcome `json:"outcome"`

	// Cells revealed by this call, in reveal order
	Revealed []RevealedCell `json:"revealed"`

	// Every mine on the board, set only on Loss
	Mines []Coord `json:"mines,omitempty"`
}

// RevealCell uncovers the cell at row, col. Out-of-bounds coordinates, revealed
// cells and finished boards are no-ops returning an empty Continue result.
// Flags do not prevent a reveal.
func (board *Board) RevealCell(row, col int) RevealResult {
	coord := Coord{Row: row, Col: col}
	if !board.canPlay() || !board.InBounds(coord) {
		return RevealResult{}
	}

	cell := board.cellAt(coord)
	if cell.isRevealed {
		return RevealResult{}
	}

	if board.state == Fresh {
		board.state = InProgress
	}

	if cell.isMine {
		board.explode(cell)
		return RevealResult{
			Outcome: Loss,
			Mines:   board.MineCoords(),
		}
	}

	result := RevealResult{
		Outcome:  Continue,
		Revealed: board.cascade(coord),
	}

	if board.hasWon() {
		board.win()
		result.Outcome = Win
	}

	return result
}

// ToggleFlag flips the flag on an unrevealed cell. ok is false when nothing
// changed: the cell is revealed, out of bounds, or the game is over.
func (board *Board) ToggleFlag(row, col int) (flagged bool, ok bool) {
	coord := Coord{Row: row, Col: col}
	if !board.canPlay() || !board.InBounds(coord) {
		return false, false
	}

	cell := board.cellAt(coord)
	if cell.isRevealed {
		return false, false
	}

	board.setFlagged(cell, !cell.isFlagged)
	return cell.isFlagged, true
}

func (board *Board) setFlagged(cell *Cell, isFlagged bool) {
	if cell.isFlagged == isFlagged {
		return
	}
	cell.isFlagged = isFlagged
	if isFlagged {
		board.numFlags++
	} else {
		board.numFlags--
	}
}

func (board *Board) reveal(cell *Cell) {
	board.setFlagged(cell, false)
	cell.isRevealed = true
	board.numRevealed++
}

func (board *Board) explode(cell *Cell) {
	board.setFlagged(cell, false)
	cell.isRevealed = true
	cell.isExploded = true
	board.state = Lost

	board.log.WithFields(logrus.Fields{
		"cell":     cell.coord,
		"revealed": board.numRevealed,
	}).Debug("board exploded")
}

func (board *Board) win() {
	board.state = Won

	board.log.WithFields(logrus.Fields{
		"revealed": board.numRevealed,
		"flags":    board.numFlags,
	}).Debug("board cleared")
}
