// tei is a line-oriented Tak engine: it reads TEI protocol commands from
// stdin and writes responses to stdout. See pkg/engine/tei.
package main

import (
	"context"

	"github.com/sixside/tei/pkg/engine"
	"github.com/sixside/tei/pkg/engine/tei"
)

func main() {
	ctx := context.Background()

	e := engine.New(ctx, "tei", "sixside")

	in := engine.ReadTEICommands(ctx)
	driver, out := tei.NewDriver(ctx, e, in)
	go engine.WriteTEIResponses(ctx, out)

	<-driver.Closed()
}
