package detect

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"whatscript/internal/script"
)

// Detector runs the majority classification with a fixed Options.
type Detector struct {
	opts Options
}

// New returns a Detector with the given options.
func New(opts Options) *Detector {
	return &Detector{opts: opts}
}

var defaultDetector = New(Options{})

// Detect classifies text with default options. ok is false when no
// character belongs to any recognized script (empty input, digits,
// punctuation, whitespace).
func Detect(text string) (s script.Script, ok bool) {
	return defaultDetector.Detect(text)
}

// Detect reports the writing system that dominates text.
//
// The threshold is half the rune count of the whole input, stop
// characters included. As soon as any script's tally exceeds it, that
// script wins and the rest of the input is skipped; otherwise the
// maximum tally wins, with ties going to the script later in table
// order. ok is false when no rune matched any script predicate.
func (d *Detector) Detect(text string) (s script.Script, ok bool) {
	if text == "" {
		return 0, false
	}

	// Fixed global threshold for the whole call; shards never recompute it.
	half, err := safecast.Conv[uint32](utf8.RuneCountInString(text) / 2)
	if err != nil {
		panic(fmt.Errorf("majority threshold overflow: %w", err))
	}

	segs := splitSegments(text, d.opts.shards())
	if len(segs) == 1 {
		var counts Counts
		if winner, early := foldChunk(segs[0], half, &counts); early {
			return winner, true
		}
		return counts.Best()
	}
	return detectSharded(segs, half)
}

// Tally counts every script-bearing rune in text with no early exit.
func Tally(text string) Counts {
	var counts Counts
	for _, r := range text {
		if script.IsStopChar(r) {
			continue
		}
		if idx, ok := script.Match(r); ok {
			counts[idx]++
		}
	}
	return counts
}

// foldChunk accumulates seg's runes into counts: stop characters are
// skipped, every other rune goes to the first matching table entry or is
// discarded. The fold aborts with an early winner once a slot exceeds
// half.
func foldChunk(seg string, half uint32, counts *Counts) (s script.Script, early bool) {
	for _, r := range seg {
		if script.IsStopChar(r) {
			continue
		}
		idx, ok := script.Match(r)
		if !ok {
			continue
		}
		counts[idx]++
		if counts[idx] > half {
			return script.Checkers[idx].Script, true
		}
	}
	return 0, false
}

// earlyWinner carries a mid-fold winner out of an errgroup goroutine,
// the same shape the sequential path returns directly.
type earlyWinner struct {
	Script script.Script
}

func (e earlyWinner) Error() string {
	return "early winner: " + e.Script.Name()
}

// detectSharded folds each segment in its own goroutine and merges the
// per-shard tallies left to right. Each shard owns its slot in results,
// so no mutex is needed.
func detectSharded(segs []string, half uint32) (script.Script, bool) {
	results := make([]Counts, len(segs))

	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(len(segs))

	for i, seg := range segs {
		g.Go(func(i int, seg string) func() error {
			return func() error {
				// A sibling shard may already hold a winner.
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if winner, early := foldChunk(seg, half, &results[i]); early {
					return earlyWinner{Script: winner}
				}
				return nil
			}
		}(i, seg))
	}

	if err := g.Wait(); err != nil {
		// Wait surfaces the first recorded error, and the context only
		// cancels after that error exists, so this is always a winner.
		var ew earlyWinner
		if errors.As(err, &ew) {
			return ew.Script, true
		}
		panic(fmt.Errorf("unexpected shard error: %w", err))
	}

	var total Counts
	for i := range results {
		if winner, early := total.merge(&results[i], half); early {
			return winner, true
		}
	}
	return total.Best()
}

// splitSegments cuts text into at most n rune-aligned segments. The cut
// points are a pure function of the input length and n.
func splitSegments(text string, n int) []string {
	if n <= 1 || len(text) < parallelMinBytes {
		return []string{text}
	}
	segs := make([]string, 0, n)
	start := 0
	for i := 1; i < n; i++ {
		cut := len(text) * i / n
		for cut < len(text) && !utf8.RuneStart(text[cut]) {
			cut++
		}
		if cut <= start {
			continue
		}
		segs = append(segs, text[start:cut])
		start = cut
	}
	if start < len(text) {
		segs = append(segs, text[start:])
	}
	return segs
}
