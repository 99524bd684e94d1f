// Package animate paces the orientation sampler on a timer and makes sure only
// the most recently started sequence keeps running.
package animate

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/osuushi/inscribe/internal"
	"github.com/osuushi/inscribe/internal/dbg"
)

const DefaultDelay = 250 * time.Millisecond

// Identity of one animation sequence. Tokens are only ever compared by
// pointer; the name is for logs.
type Token struct {
	name string
}

func (tok *Token) String() string {
	if tok == nil {
		return "Ø"
	}
	return tok.name
}

type FrameFunc func(Frame) error

// Driver runs sampler sequences one frame at a time. Starting a sequence with
// Begin makes every earlier token stale, and a stale sequence quits quietly the
// next time it wakes up. Nothing is interrupted mid-frame.
type Driver struct {
	// Wait between frames. Zero means no wait.
	Delay time.Duration
	// Falls back to the package logger when nil
	Logger *slog.Logger

	live atomic.Pointer[Token]
}

func NewDriver() *Driver {
	return &Driver{Delay: DefaultDelay}
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return internal.Logger()
}

// Create a token and make it the live one.
func (d *Driver) Begin() *Token {
	tok := &Token{}
	tok.name = dbg.Name(tok)
	if previous := d.live.Swap(tok); previous != nil {
		d.logger().Info("superseding sequence", "previous", previous.String(), "sequence", tok.String())
	}
	return tok
}

func (d *Driver) Live(tok *Token) bool {
	return tok != nil && d.live.Load() == tok
}

// Run the sampler's frames in order under tok, calling fn with each one and
// waiting Delay in between. Returns nil when the frames run out or when tok
// stops being live, ctx.Err() if the context ends during a wait, and the
// first error from the sampler or from fn otherwise.
func (d *Driver) Run(ctx context.Context, tok *Token, sampler *Sampler, fn FrameFunc) error {
	logger := d.logger().With("sequence", tok.String())
	logger.Info("sequence started", "start", sampler.Start, "end", sampler.End)

	for i := sampler.Start; i < sampler.End; i++ {
		if !d.Live(tok) {
			logger.Info("sequence superseded", "frame", i)
			return nil
		}

		frame, err := sampler.Frame(i)
		if err != nil {
			logger.Warn("frame failed", "frame", i, "error", err)
			return err
		}
		if err := fn(frame); err != nil {
			return errors.Wrapf(err, "frame %d", i)
		}

		if i+1 < sampler.End {
			if err := d.wait(ctx); err != nil {
				return err
			}
		}
	}

	logger.Info("sequence finished")
	return nil
}

// Begin a new sequence and run it.
func (d *Driver) Animate(ctx context.Context, sampler *Sampler, fn FrameFunc) error {
	return d.Run(ctx, d.Begin(), sampler, fn)
}

func (d *Driver) wait(ctx context.Context) error {
	if d.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
