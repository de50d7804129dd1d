package game

// Director plays a board on its own
type Director interface {
	/**
	 * Initialize the director for a fresh board
	 */
	Init(*Board)

	/**
	 * Perform a single move, returning false once there is nothing left to do
	 */
	Act() bool
}

// Play lets the director act until the board is finished or it gives up
func Play(board *Board, director Director) BoardState {
	director.Init(board)
	for board.canPlay() && director.Act() {
	}
	return board.state
}
