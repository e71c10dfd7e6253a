package tak

import "math/bits"

// spreadLimits holds, for each of the four directions, the distance to the
// nearest blocking wall/capstone (or the edge) and which square that
// blocker sits on (NoSquare if the edge is reached first).
type spreadLimits struct {
	distance [NumDirs]int
	blocker  [NumDirs]Square
}

// GenerateMoves returns every placement and spread pseudo-legal from pos.
// During the opening (the first two plies) only flat placements are
// generated, for either color; MakeMove is responsible for placing the
// opponent's stone during those plies.
func (pos *Position) GenerateMoves() []Move {
	moves := make([]Move, 0, 256)

	if pos.ply < 2 {
		pos.appendPlacements(&moves, Flat)
		return moves
	}

	if pos.remainingStones[pos.stm] > 0 {
		pos.appendPlacements(&moves, Flat)
		pos.appendPlacements(&moves, Wall)
	}
	if pos.remainingCaps[pos.stm] > 0 {
		pos.appendPlacements(&moves, Cap)
	}
	pos.appendSpreads(&moves)

	return moves
}

func (pos *Position) appendPlacements(moves *[]Move, pt PieceType) {
	for bb := pos.Occupied().Not(); bb != EmptyBitboard; {
		var sq Square
		sq, bb = bb.PopLSB()
		*moves = append(*moves, PlaceMove(pt, sq))
	}
}

func (pos *Position) appendSpreads(moves *[]Move) {
	for bb := pos.colors[pos.stm]; bb != EmptyBitboard; {
		var sq Square
		sq, bb = bb.PopLSB()

		limits := pos.spreadCalc(sq)
		isCap := pos.PieceOn(sq).PieceType() == Cap
		height := int(pos.Height(sq))

		for d := 0; d < NumDirs; d++ {
			dir := Dir(d)
			blocker := limits.blocker[d]
			blockerDistance := limits.distance[d]

			maxSpreadDist := min(height, blockerDistance)
			maxPickup := min(height, NumFiles)

			canCrush := isCap && blocker.IsSome() &&
				pos.PieceOn(blocker).PieceType() == Wall &&
				maxPickup > blockerDistance

			if maxSpreadDist != 0 {
				splatLimit := uint8(1) << maxPickup
				for splat := uint8(1); splat < splatLimit; splat++ {
					if bits.OnesCount8(splat) <= maxSpreadDist {
						*moves = append(*moves, SpreadMove(sq, dir, splat))
					}
				}
			}
			if canCrush {
				splatLimit := uint8(1) << (maxPickup - 1)
				for splat := uint8(0); splat < splatLimit; splat++ {
					if bits.OnesCount8(splat) == blockerDistance {
						crush := splat | uint8(1)<<bits.Len8(splat)
						*moves = append(*moves, SpreadMove(sq, dir, crush))
					}
				}
			}
		}
	}
}

func (pos *Position) spreadCalc(sq Square) spreadLimits {
	bit := BitMask(sq)

	file, rank := sq.File(), sq.Rank()
	fileMask := FileMask(file)
	rankMask := RankMask(rank)

	blockers := pos.Blockers()

	nBlocker := (blockers & fileMask & (-bit)).AndNot(bit).LSB()
	eBlocker := (blockers & rankMask & (-bit)).AndNot(bit).LSB()
	sBlocker := (blockers & fileMask & (bit - 1)).MSB()
	wBlocker := (blockers & rankMask & (bit - 1)).MSB()

	nRank := NumRanks - 1
	if nBlocker.IsSome() {
		nRank = nBlocker.Rank() - 1
	}
	eFile := NumFiles - 1
	if eBlocker.IsSome() {
		eFile = eBlocker.File() - 1
	}
	sRank := 0
	if sBlocker.IsSome() {
		sRank = sBlocker.Rank() + 1
	}
	wFile := 0
	if wBlocker.IsSome() {
		wFile = wBlocker.File() + 1
	}

	return spreadLimits{
		distance: [NumDirs]int{nRank - rank, eFile - file, rank - sRank, file - wFile},
		blocker:  [NumDirs]Square{nBlocker, eBlocker, sBlocker, wBlocker},
	}
}
