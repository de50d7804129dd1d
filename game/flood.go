package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gosweep/util/collections"
)

type NeighborGetter func(Coord) []Coord

// Visitor handles a dequeued coordinate and returns whether to expand into its neighbors
type Visitor func(Coord) bool

// flood walks outward from origin using an explicit work-list. Each coordinate
// is enqueued at most once, so memory is bounded by the number of cells.
func flood(origin Coord, visit Visitor, getNeighbors NeighborGetter) {
	var work deque.Deque[Coord]
	queued := collections.NewSet(origin)
	work.PushBack(origin)

	for work.Len() > 0 {
		coord := work.PopFront()
		if !visit(coord) {
			continue
		}

		for _, neighbor := range getNeighbors(coord) {
			if queued.Contains(neighbor) {
				continue
			}
			queued.Add(neighbor)
			work.PushBack(neighbor)
		}
	}
}

// cascade reveals origin and, through zero-count cells, every connected
// zero region plus its numbered border
func (board *Board) cascade(origin Coord) []RevealedCell {
	var revealed []RevealedCell

	flood(
		origin,
		func(coord Coord) bool {
			cell := board.cellAt(coord)
			if cell.isRevealed || cell.isMine {
				return false
			}
			board.reveal(cell)
			revealed = append(revealed, RevealedCell{Coord: coord, AdjacentMines: cell.numMines})
			return cell.numMines == 0
		},
		func(coord Coord) []Coord {
			neighbors := board.neighbors(coord)
			unrevealed := neighbors[:0]
			for _, neighbor := range neighbors {
				if !board.cellAt(neighbor).isRevealed {
					unrevealed = append(unrevealed, neighbor)
				}
			}
			return unrevealed
		},
	)

	return revealed
}
