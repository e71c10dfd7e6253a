// Package tei contains a driver for using the engine under the TEI
// protocol: a line-oriented protocol for Tak engines modeled after UCI.
//
// Commands:
//
//	position startpos|tps <board> <stm> <fullmove> [moves <move> ...]
//	moves <move> ...
//	perft [depth]
//	d
//
// An unrecognized command, or a malformed argument to a recognized one,
// produces a single line "info error (<cmd>): <message>" and otherwise
// leaves the engine's position untouched. The one exception is `position`:
// it resets to startpos or to the given TPS board before it checks the
// tokens that follow, so a bad trailing token or move leaves the reset
// position in place.
package tei

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/sixside/tei/pkg/engine"
	"github.com/sixside/tei/pkg/tak"
	"go.uber.org/atomic"
)

const ProtocolName = "tei"

// Driver reads TEI lines from in and writes responses to the channel it
// returns. It closes that channel, and its Closed() channel, once in is
// drained (EOF on stdin, per spec, exits status 0).
type Driver struct {
	e *engine.Engine

	out chan<- string

	quit   chan struct{}
	closed atomic.Bool
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: make(chan struct{}),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	if d.closed.CAS(false, true) {
		close(d.quit)
	}
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "TEI protocol initialized")

	for line := range in {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "position":
			d.handlePosition(ctx, args)
		case "moves":
			d.handleMoves(ctx, args)
		case "perft":
			d.handlePerft(ctx, args)
		case "d":
			d.out <- fmt.Sprintf("tps: %v", d.e.TPS())
		default:
			d.protocolError(cmd, "Unknown command")
		}
	}

	logw.Infof(ctx, "Input stream closed")
}

func (d *Driver) handlePosition(ctx context.Context, args []string) {
	if len(args) == 0 {
		d.protocolError("position", "Empty position")
		return
	}

	var rest []string
	switch args[0] {
	case "startpos":
		d.e.ResetToStart(ctx)
		rest = args[1:]

	case "tps":
		if len(args) < 4 {
			d.protocolError("position", "incorrect number of whitespace-separated components in tps")
			return
		}
		if err := d.e.ResetToTPS(ctx, args[1], args[2], args[3]); err != nil {
			d.protocolError("position", fmt.Sprintf("cannot parse tps: %v", err))
			return
		}
		rest = args[4:]

	default:
		d.unrecognizedToken("position", args[0])
		return
	}

	if len(rest) == 0 {
		return
	}
	if rest[0] != "moves" {
		d.unrecognizedToken("position", rest[0])
		return
	}
	d.handleMoves(ctx, rest[1:])
}

func (d *Driver) handleMoves(ctx context.Context, args []string) {
	// Parse every move before applying any, so a bad token leaves the
	// position as it was.
	for _, arg := range args {
		if _, err := tak.ParseMove(arg); err != nil {
			d.protocolError("moves", fmt.Sprintf("invalid move string: %v", err))
			return
		}
	}
	for _, arg := range args {
		if err := d.e.ApplyMove(ctx, arg); err != nil {
			d.protocolError("moves", fmt.Sprintf("invalid move string: %v", err))
			return
		}
	}
}

func (d *Driver) handlePerft(_ context.Context, args []string) {
	depthStr := "1"
	if len(args) > 0 {
		depthStr = args[0]
	}

	depth, err := strconv.Atoi(depthStr)
	if err != nil {
		d.protocolError("perft", fmt.Sprintf("invalid depth argument: %v", err))
		return
	}

	d.e.SplitPerft(lineWriter{d.out}, depth, lang.Optional[int]{})
}

func (d *Driver) protocolError(cmd, msg string) {
	d.out <- fmt.Sprintf("info error (%v): %v", cmd, msg)
}

func (d *Driver) unrecognizedToken(cmd, token string) {
	d.protocolError(cmd, fmt.Sprintf("unrecognised token `%v`", token))
}

// lineWriter adapts the "out chan<- string" protocol sink to an io.Writer so
// Engine.SplitPerft's fmt.Fprintf calls land on the same line-buffered
// channel every other response goes through.
type lineWriter struct {
	out chan<- string
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.out <- line
	}
	return len(p), nil
}
