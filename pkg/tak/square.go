package tak

import "fmt"

// Square represents a square on the 6x6 board, ordered A1=0, B1=1, .., F6=35. This
// numbering matches a 36-bit interpretation as a bitboard:
//
//	A6=30 B6=31 C6=32 D6=33 E6=34 F6=35
//	A5=24 B5=25 C5=26 D5=27 E5=28 F5=29
//	A4=18 B4=19 C4=20 D4=21 E4=22 F4=23
//	A3=12 B3=13 C3=14 D3=15 E3=16 F3=17
//	A2=6  B2=7  C2=8  D2=9  E2=10 F2=11
//	A1=0  B1=1  C1=2  D1=3  E1=4  F1=5
//
// A square is a bit-index into the Bitboard layout (file + 6*rank). 6 bits.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1

	A2
	B2
	C2
	D2
	E2
	F2

	A3
	B3
	C3
	D3
	E3
	F3

	A4
	B4
	C4
	D4
	E4
	F4

	A5
	B5
	C5
	D5
	E5
	F5

	A6
	B6
	C6
	D6
	E6
	F6

	// NoSquare is a sentinel for "no blocker found" results from the spread
	// limit computation. Not a valid board square.
	NoSquare Square = 0xff
)

const (
	NumSquares = 36
	NumFiles   = 6
	NumRanks   = 6
)

// NewSquare returns the square for the given file and rank, both 0-indexed.
func NewSquare(file, rank int) Square {
	return Square(file + rank*NumFiles)
}

func (sq Square) File() int {
	return int(sq) % NumFiles
}

func (sq Square) Rank() int {
	return int(sq) / NumFiles
}

func (sq Square) IsNone() bool {
	return sq == NoSquare
}

func (sq Square) IsSome() bool {
	return sq != NoSquare
}

// Step returns the square one step away in the given direction. The caller
// must ensure the step stays on the board; Step does not bounds-check.
func (sq Square) Step(d Dir) Square {
	file, rank := sq.File(), sq.Rank()
	switch d {
	case North:
		return NewSquare(file, rank+1)
	case South:
		return NewSquare(file, rank-1)
	case East:
		return NewSquare(file+1, rank)
	case West:
		return NewSquare(file-1, rank)
	default:
		panic("invalid direction")
	}
}

func (sq Square) String() string {
	if sq.IsNone() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ParseSquare parses a square specifier such as "a1" or "f6".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, ErrInvalidSquareLength
	}

	file := s[0]
	if file < 'a' || file > 'f' {
		return NoSquare, ErrInvalidSquareFile
	}
	rank := s[1]
	if rank < '1' || rank > '6' {
		return NoSquare, ErrInvalidSquareRank
	}

	return NewSquare(int(file-'a'), int(rank-'1')), nil
}
