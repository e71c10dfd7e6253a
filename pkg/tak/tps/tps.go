// Package tps contains utilities for reading and writing Tak positions in
// TPS (Tak Positional System) notation.
package tps

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sixside/tei/pkg/tak"
)

// Initial is the TPS for the empty starting position.
const Initial = "x6/x6/x6/x6/x6/x6 1 1"

// Parse errors, one per distinct malformed-input shape.
var (
	ErrWrongPartCount       = errors.New("incorrect number of whitespace-separated components in tps")
	ErrWrongRankCount       = errors.New("incorrect number of ranks in tps board component")
	ErrWrongFileCount       = errors.New("incorrect number of files in tps board component")
	ErrInvalidEmptySquare   = errors.New("invalidly specified empty square in tps board component")
	ErrNonTrailingPieceType = errors.New("S or C found in the middle of a stack in tps board component")
	ErrInvalidCharacter     = errors.New("invalid character")
	ErrTooManyStones        = errors.New("too many stones on board in tps board component")
	ErrTooManyCaps          = errors.New("too many capstones on board in tps board component")
	ErrInvalidSideToMove    = errors.New("invalid tps side-to-move component")
	ErrInvalidFullMove      = errors.New("invalid tps full-move counter component")
)

// Decode parses a complete TPS string ("<board> <stm> <fullmove>").
func Decode(s string) (tak.Position, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return tak.Position{}, ErrWrongPartCount
	}
	return DecodeParts(parts[0], parts[1], parts[2])
}

// DecodeParts parses the three whitespace-separated TPS components
// individually, as the TEI `position tps <board> <stm> <fullmove>` command
// receives them.
func DecodeParts(board, stm, fullmove string) (tak.Position, error) {
	ranks := strings.Split(board, "/")
	if len(ranks) != tak.NumRanks {
		return tak.Position{}, ErrWrongRankCount
	}

	var stacks []tak.Stack
	var stoneCount, capCount [tak.NumColors]int

	for invRank, rankStr := range ranks {
		rank := tak.NumRanks - 1 - invRank
		elements := strings.Split(rankStr, ",")
		file := 0

		for _, el := range elements {
			if file >= tak.NumFiles {
				return tak.Position{}, ErrWrongFileCount
			}

			if el == "" {
				return tak.Position{}, ErrInvalidEmptySquare
			}

			if rest, ok := strings.CutPrefix(el, "x"); ok {
				count := 1
				if rest != "" {
					n, err := strconv.Atoi(rest)
					if err != nil || n <= 0 {
						return tak.Position{}, ErrInvalidEmptySquare
					}
					count = n
				}
				file += count
				continue
			}

			sq := tak.NewSquare(file, rank)
			file++

			var height uint8
			var stack uint64
			top := tak.NoPieceType

			for _, ch := range el {
				if top.IsSome() {
					return tak.Position{}, ErrNonTrailingPieceType
				}

				switch ch {
				case 'S':
					top = tak.Wall
				case 'C':
					top = tak.Cap
				case '1':
					stoneCount[tak.P1]++
					height++
					stack <<= 1
				case '2':
					stoneCount[tak.P2]++
					height++
					stack = (stack << 1) | 1
				default:
					return tak.Position{}, ErrInvalidCharacter
				}
			}

			if height == 0 {
				return tak.Position{}, ErrInvalidEmptySquare
			}

			pt := top.SomeOr(tak.Flat)
			topColor := tak.Color(stack & 1)

			if pt == tak.Cap {
				stoneCount[topColor]--
				capCount[topColor]++
			}

			stacks = append(stacks, tak.Stack{Sq: sq, Top: pt, Colors: stack, Height: height})
		}

		if file != tak.NumFiles {
			return tak.Position{}, ErrWrongFileCount
		}
	}

	const maxStones = tak.StartingStones
	const maxCaps = tak.StartingCaps
	for _, n := range stoneCount {
		if n > maxStones {
			return tak.Position{}, ErrTooManyStones
		}
	}
	for _, n := range capCount {
		if n > maxCaps {
			return tak.Position{}, ErrTooManyCaps
		}
	}
	remainingStones := [tak.NumColors]uint8{uint8(maxStones - stoneCount[tak.P1]), uint8(maxStones - stoneCount[tak.P2])}
	remainingCaps := [tak.NumColors]uint8{uint8(maxCaps - capCount[tak.P1]), uint8(maxCaps - capCount[tak.P2])}

	c, ok := tak.ParseColor(stm)
	if !ok {
		return tak.Position{}, ErrInvalidSideToMove
	}

	fm, err := strconv.ParseUint(fullmove, 10, 16)
	if err != nil || fm == 0 {
		return tak.Position{}, ErrInvalidFullMove
	}
	ply := uint16((fm-1)*2) + uint16(c)

	return tak.NewPosition(stacks, c, ply, remainingStones, remainingCaps), nil
}

// Encode formats pos in TPS notation.
func Encode(pos *tak.Position) string {
	var ranks []string
	for rank := tak.NumRanks - 1; rank >= 0; rank-- {
		var elements []string
		empty := 0

		for file := 0; file < tak.NumFiles; file++ {
			sq := tak.NewSquare(file, rank)
			if pos.IsEmpty(sq) {
				empty++
				continue
			}

			if empty > 0 {
				elements = append(elements, emptyRun(empty))
				empty = 0
			}

			height := pos.Height(sq)
			stack := pos.Stack(sq)

			var sb strings.Builder
			for i := int(height) - 1; i >= 0; i-- {
				if (stack>>i)&1 == 0 {
					sb.WriteByte('1')
				} else {
					sb.WriteByte('2')
				}
			}
			sb.WriteString(pos.PieceOn(sq).PieceType().String())

			elements = append(elements, sb.String())
		}

		if empty > 0 {
			elements = append(elements, emptyRun(empty))
		}

		ranks = append(ranks, strings.Join(elements, ","))
	}

	return fmt.Sprintf("%v %v %v", strings.Join(ranks, "/"), pos.ToMove(), pos.FullMove())
}

func emptyRun(n int) string {
	if n == 1 {
		return "x"
	}
	return "x" + strconv.Itoa(n)
}
