package detect

import (
	"whatscript/internal/script"
)

// Counts is a per-script tally, indexed by position in script.Checkers.
type Counts [script.Count]uint32

// Get returns the tally for s.
func (c *Counts) Get(s script.Script) uint32 {
	return c[script.Rank(s)]
}

// Total returns the sum of all tallies.
func (c *Counts) Total() uint64 {
	var sum uint64
	for _, n := range c {
		sum += uint64(n)
	}
	return sum
}

// Best returns the script with the maximum tally. When several scripts
// share the maximum, the one latest in table order wins. ok is false
// when every tally is zero: an all-zero vector means no character
// belonged to any script, not that the last table entry dominates.
func (c *Counts) Best() (s script.Script, ok bool) {
	best := 0
	var bestCount uint32
	for i, n := range c {
		if n >= bestCount {
			best, bestCount = i, n
		}
	}
	if bestCount == 0 {
		return 0, false
	}
	return script.Checkers[best].Script, true
}

// merge adds other into c slot by slot. If a combined slot exceeds half,
// merging stops and that slot's script is reported as the early winner.
func (c *Counts) merge(other *Counts, half uint32) (s script.Script, early bool) {
	for i := range c {
		c[i] += other[i]
		if c[i] > half {
			return script.Checkers[i].Script, true
		}
	}
	return 0, false
}
