package tak

import "fmt"

// Verify checks the structural invariants documented on Position and
// returns the first violation found, if any. Intended for debug builds and
// tests, not the hot path; callers treat a non-nil error as a fatal
// programmer error (see pkg/engine).
func (pos *Position) Verify() error {
	var stones, caps [NumColors]int

	for sq := Square(0); sq < NumSquares; sq++ {
		h := pos.heights[sq]
		empty := pos.mailbox[sq].IsNone()

		if (h == 0) != empty {
			return fmt.Errorf("square %v: height=%v but mailbox empty=%v", sq, h, empty)
		}
		if pos.stacks[sq]&^((uint64(1)<<h)-1) != 0 {
			return fmt.Errorf("square %v: stack word has bits set at or above height %v", sq, h)
		}
		if h == 0 {
			if (pos.colors[P1] | pos.colors[P2] | pos.tops[Flat] | pos.tops[Wall] | pos.tops[Cap]).IsSet(sq) {
				return fmt.Errorf("square %v: empty but present in a colors/tops bitboard", sq)
			}
			continue
		}

		topColor := Color(pos.stacks[sq] & 1)
		if pos.mailbox[sq].Color() != topColor {
			return fmt.Errorf("square %v: mailbox color %v disagrees with stack top color %v", sq, pos.mailbox[sq].Color(), topColor)
		}
		if !pos.colors[topColor].IsSet(sq) {
			return fmt.Errorf("square %v: not present in colors[%v] bitboard", sq, topColor)
		}
		if !pos.tops[pos.mailbox[sq].PieceType()].IsSet(sq) {
			return fmt.Errorf("square %v: not present in tops[%v] bitboard", sq, pos.mailbox[sq].PieceType())
		}

		for i := uint8(0); i < h; i++ {
			c := Color((pos.stacks[sq] >> i) & 1)
			if i == 0 && pos.mailbox[sq].PieceType() == Cap {
				caps[c]++
			} else {
				stones[c]++
			}
		}
	}

	for c := Color(0); c < NumColors; c++ {
		if int(pos.remainingStones[c])+stones[c] != StartingStones {
			return fmt.Errorf("color %v: remaining stones %v + on-board %v != %v", c, pos.remainingStones[c], stones[c], StartingStones)
		}
		if int(pos.remainingCaps[c])+caps[c] != StartingCaps {
			return fmt.Errorf("color %v: remaining caps %v + on-board %v != %v", c, pos.remainingCaps[c], caps[c], StartingCaps)
		}
	}

	return nil
}
