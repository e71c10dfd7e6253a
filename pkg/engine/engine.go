// Package engine wraps a tak.Position with the bookkeeping (reset,
// sequential move application, perft) the protocol driver needs.
package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/sixside/tei/pkg/perft"
	"github.com/sixside/tei/pkg/tak"
	"github.com/sixside/tei/pkg/tak/tps"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation options.
type Options struct {
	// Komi is the flat-count bonus awarded to P2 when a game ends by stone
	// exhaustion rather than a road.
	Komi int
	// Verify enables a Position.Verify call after every move applied through
	// ApplyMove. Meant for tests and debugging; the extra O(squares) walk is
	// skipped by default. Perft never runs it.
	Verify bool
}

func (o Options) String() string {
	return fmt.Sprintf("{komi=%v, verify=%v}", o.Komi, o.Verify)
}

// Engine holds the current position and options for a single TEI session.
type Engine struct {
	name, author string
	opts         Options

	pos tak.Position
	mu  sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithKomi overrides the default flat-count bonus.
func WithKomi(komi int) Option {
	return func(e *Engine) {
		e.opts.Komi = komi
	}
}

// WithVerify enables post-move invariant checking.
func WithVerify(verify bool) Option {
	return func(e *Engine) {
		e.opts.Verify = verify
	}
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		opts:   Options{Komi: perft.Komi},
	}
	for _, fn := range opts {
		fn(e)
	}
	e.pos = tak.NewStartPosition()

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

// Position returns a copy of the current position.
func (e *Engine) Position() tak.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos
}

// TPS returns the current position in TPS notation.
func (e *Engine) TPS() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return tps.Encode(&e.pos)
}

// ResetToStart resets the engine to the empty starting position.
func (e *Engine) ResetToStart(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = tak.NewStartPosition()
	logw.Infof(ctx, "Reset to startpos")
}

// ResetToTPS resets the engine to the position described by board/stm/fullmove,
// the three whitespace-separated TPS components.
func (e *Engine) ResetToTPS(ctx context.Context, board, stm, fullmove string) error {
	pos, err := tps.DecodeParts(board, stm, fullmove)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.pos = pos
	logw.Infof(ctx, "Reset to tps: %v", tps.Encode(&e.pos))
	return nil
}

// ApplyMove parses and plays a single move string against the current
// position. It does not check the move against GenerateMoves; TEI trusts
// the sequence of moves it is told to replay (see spec's `moves` command).
func (e *Engine) ApplyMove(ctx context.Context, moveStr string) error {
	mv, err := tak.ParseMove(moveStr)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.pos.MakeMove(mv)
	if e.opts.Verify {
		if err := next.Verify(); err != nil {
			logw.Exitf(ctx, "Invariant violated after %v: %v", mv, err)
		}
	}
	e.pos = next

	logw.Debugf(ctx, "Move %v: %v", mv, tps.Encode(&e.pos))
	return nil
}

// Perft runs perft at depth on the current position. komi, if set,
// overrides the engine's configured flat-count bonus for this call only;
// zero-value (unset) uses the engine's default, mirroring how
// searchctl.Options.DepthLimit falls back to the engine default when unset.
func (e *Engine) Perft(depth int, komi lang.Optional[int]) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	k := e.opts.Komi
	if v, ok := komi.V(); ok {
		k = v
	}
	return perft.CountKomi(e.pos, depth, k)
}

// SplitPerft runs perft at depth on the current position, writing the
// per-root-move breakdown and totals to w. Same komi override semantics as
// Perft.
func (e *Engine) SplitPerft(w io.Writer, depth int, komi lang.Optional[int]) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	k := e.opts.Komi
	if v, ok := komi.V(); ok {
		k = v
	}
	return perft.SplitPerftKomi(w, e.pos, depth, k)
}

// ReadTEICommands reads whitespace-delimited TEI commands from stdin, one
// per line, and returns them on a channel for a Driver to consume. Async;
// the channel is closed when stdin reaches EOF.
func ReadTEICommands(ctx context.Context) <-chan string {
	ret := make(chan string, 1)
	go func() {
		defer close(ret)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			logw.Debugf(ctx, "tei<< %v", scanner.Text())
			ret <- scanner.Text()
		}
	}()
	return ret
}

// WriteTEIResponses writes a Driver's response lines to stdout as they
// arrive, one TEI line per write.
func WriteTEIResponses(ctx context.Context, out <-chan string) {
	for line := range out {
		logw.Debugf(ctx, "tei>> %v", line)
		_, _ = fmt.Fprintln(os.Stdout, line)
	}
}
