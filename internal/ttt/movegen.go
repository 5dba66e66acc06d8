package ttt

import "math/bits"

// GenerateMoves lists every empty square, in increasing Square order.
// Cheap enough on a 9-bit board to recompute from scratch every call
// rather than maintain an incremental free-square mask.
func (p *Position) GenerateMoves() []Square {
	free := uint(0b111111111) &^ uint(p.bitboards[xBoardIdx]|p.bitboards[oBoardIdx])

	moves := make([]Square, 0, bits.OnesCount(free))
	for free != 0 {
		moves = append(moves, Square(bits.TrailingZeros(free)))
		free &= free - 1
	}
	return moves
}
