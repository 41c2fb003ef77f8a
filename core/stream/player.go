// Package stream replays a document as a sequence of deltas, the way a
// token-by-token answer reaches a renderer. It is how the streaming
// narrative fixture is meant to be consumed.
package stream

import (
	"context"
	"strings"
	"time"

	"github.com/gaurav-prasanna/mdfixtures/core/chunk"
)

// Player emits the deltas of a document at a fixed interval.
type Player struct {
	Chunker  *chunk.Chunker
	Interval time.Duration // pause before every delta after the first; 0 disables pacing
}

// NewPlayer creates a Player with the given delta size and interval.
func NewPlayer(chunkSize int, interval time.Duration) *Player {
	return &Player{
		Chunker:  chunk.New(chunkSize),
		Interval: interval,
	}
}

// Play calls emit with each delta of text in order. It stops at the first
// emit error, or when ctx is done, returning that error.
func (p *Player) Play(ctx context.Context, text string, emit func(delta string) error) error {
	var ticker *time.Ticker
	if p.Interval > 0 {
		ticker = time.NewTicker(p.Interval)
		defer ticker.Stop()
	}

	for i, delta := range p.chunker().Chunk(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if ticker != nil && i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
		if err := emit(delta); err != nil {
			return err
		}
	}
	return nil
}

// Snapshots returns the cumulative document after each delta: what a
// consumer re-rendering on every update would see. The last snapshot is
// text itself.
func (p *Player) Snapshots(text string) []string {
	deltas := p.chunker().Chunk(text)
	out := make([]string, len(deltas))
	var b strings.Builder
	b.Grow(len(text))
	for i, d := range deltas {
		b.WriteString(d)
		out[i] = b.String()
	}
	return out
}

func (p *Player) chunker() *chunk.Chunker {
	if p.Chunker == nil {
		return chunk.New(0)
	}
	return p.Chunker
}
