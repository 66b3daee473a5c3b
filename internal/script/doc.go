// Package script defines the closed set of recognized writing systems and
// the rune-level membership tests used to classify text.
// Invariants:
//   - Script values are declared in alphabetic order and never reordered;
//     their ordinals are a stable identity for bindings and map keys.
//   - Checkers is immutable after package init and safe for concurrent reads.
//   - Checkers order (Latin first) decides which script claims a rune that
//     satisfies more than one predicate, and positions in that order are the
//     tie-break rank used by the detector.
//   - The code-point intervals in ranges.go are normative; changing them
//     changes classification results.
package script
