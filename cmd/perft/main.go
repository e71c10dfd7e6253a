// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/sixside/tei/pkg/perft"
	"github.com/sixside/tei/pkg/tak"
	"github.com/sixside/tei/pkg/tak/tps"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("tps", "", "Start position (defaults to standard startpos)")
	divide   = flag.Bool("divide", false, "Print per-root-move subcounts at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	pos := tak.NewStartPosition()
	if *position != "" {
		p, err := tps.Decode(*position)
		if err != nil {
			logw.Exitf(ctx, "Invalid tps '%v': %v", *position, err)
		}
		pos = p
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()

		var nodes uint64
		if *divide && i == *depth {
			nodes = perft.SplitPerft(os.Stdout, pos, i)
		} else {
			nodes = perft.Count(pos, i)
		}

		duration := time.Since(start)
		fmt.Printf("perft,%v,%v,%v\n", i, nodes, duration.Microseconds())
	}
}
