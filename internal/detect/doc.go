// Package detect decides which writing system dominates a span of text.
// Invariants:
//   - The majority threshold is half the rune count of the WHOLE input,
//     stop characters included, computed once per call.
//   - Count vectors are indexed by script.Checkers position, not by the
//     Script ordinal.
//   - Shard boundaries depend only on the input and the shard count, and
//     shard results are merged left to right, so a call is reproducible
//     for a fixed Options.
//   - An early winner (a count that exceeded the threshold mid-fold or
//     mid-merge) is final; remaining input is never consulted. Only one
//     script can ever exceed half of the total, so concurrent shards
//     cannot disagree about who the early winner is.
package detect
