package game

import "fmt"

// Coord identifies a cell by its 0-indexed row and column
type Coord struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (coord Coord) String() string {
	return fmt.Sprintf("(%d, %d)", coord.Row, coord.Col)
}

type Cell struct {
	coord    Coord
	numMines int

	isMine, isRevealed, isFlagged bool
	isExploded                    bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell%v", cell.coord)
}

func (cell *Cell) Coord() Coord {
	return cell.coord
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// IsExploded is true only for the mine whose reveal lost the game
func (cell *Cell) IsExploded() bool {
	return cell.isExploded
}

// AdjacentMines is the number of mines among the cell's neighbors
func (cell *Cell) AdjacentMines() int {
	return cell.numMines
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine:
		switch {
		case cell.isExploded:
			return '*'
		case cell.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.isFlagged:
		return 'f'
	case cell.isRevealed:
		return '.'
	default:
		return '#'
	}
}

func (cell *Cell) deserialize(c rune, fresh bool) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true
		if fresh {
			return true
		}
		switch c {
		case '*':
			cell.isExploded = true
			cell.isRevealed = true
		case 'F':
			cell.isFlagged = true
		}
	case 'f':
		cell.isFlagged = !fresh
	case '.':
		cell.isRevealed = !fresh
	case '#':
	default:
		return false
	}

	return true
}
