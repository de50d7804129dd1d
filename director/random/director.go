package random

import (
	"math/rand"

	"github.com/they4kman/gosweep/game"
)

// Director reveals hidden, unflagged cells in a shuffled order
type Director struct {
	Rand *rand.Rand

	board *game.Board
	order []game.Coord
	next  int
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.next = 0
	director.order = make([]game.Coord, 0, board.NumCells())
	board.Cells(func(cell *game.Cell) {
		director.order = append(director.order, cell.Coord())
	})

	if director.Rand == nil {
		director.Rand = rand.New(rand.NewSource(board.Seed()))
	}
	director.Rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() bool {
	for ; director.next < len(director.order); director.next++ {
		coord := director.order[director.next]
		cell := director.board.CellAt(coord.Row, coord.Col)
		if !cell.IsRevealed() && !cell.IsFlagged() {
			director.board.RevealCell(coord.Row, coord.Col)
			director.next++
			return true
		}
	}
	return false
}
