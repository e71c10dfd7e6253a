// Package perft walks the move tree of a tak.Position to count leaf nodes,
// the standard move-generator correctness/performance benchmark.
package perft

import (
	"fmt"
	"io"
	"time"

	"github.com/sixside/tei/pkg/tak"
)

// Komi is the default flat-count tiebreak used when a search does not
// specify one. Kept distinct from tak.DefaultKomi so callers are explicit
// about which constant they depend on; they are the same value today.
const Komi = tak.DefaultKomi

// Count returns the number of leaf positions reachable from pos after
// exactly depth plies, breaking flat-count ties with the default komi. A
// terminal position (road or flat-win) has zero children regardless of
// remaining depth, matching standard perft convention: terminal nodes
// contribute to the count of the ply that reached them, not beyond.
func Count(pos tak.Position, depth int) uint64 {
	return CountKomi(pos, depth, Komi)
}

// CountKomi is Count with an explicit komi, for callers (the engine layer)
// that expose komi as a runtime option rather than the package default.
func CountKomi(pos tak.Position, depth, komi int) uint64 {
	return count(pos, depth, komi)
}

func count(pos tak.Position, depth, komi int) uint64 {
	if depth <= 0 {
		return 1
	}
	if _, done := pos.Terminal(komi); done {
		return 0
	}

	moves := pos.GenerateMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var total uint64
	for _, mv := range moves {
		total += count(pos.MakeMove(mv), depth-1, komi)
	}
	return total
}

// SplitPerft runs perft at depth with the default komi, printing a
// per-root-move breakdown, the total node count, and a nodes-per-second
// rate to w, in the format the TEI `perft` command emits.
func SplitPerft(w io.Writer, pos tak.Position, depth int) uint64 {
	return SplitPerftKomi(w, pos, depth, Komi)
}

// SplitPerftKomi is SplitPerft with an explicit komi.
func SplitPerftKomi(w io.Writer, pos tak.Position, depth, komi int) uint64 {
	start := time.Now()

	var total uint64
	if depth <= 0 {
		total = 1
	} else if _, done := pos.Terminal(komi); done {
		total = 0
	} else {
		for _, mv := range pos.GenerateMoves() {
			child := count(pos.MakeMove(mv), depth-1, komi)
			fmt.Fprintf(w, "%v\t: %v\n", mv, child)
			total += child
		}
	}

	elapsed := time.Since(start).Seconds()
	mnps := 0.0
	if elapsed > 0 {
		mnps = float64(total) / elapsed / 1_000_000.0
	}

	fmt.Fprintf(w, "total: %v\n", total)
	fmt.Fprintf(w, "%.1f Mnps\n", mnps)

	return total
}
