// Package tree computes nested groupings of an ordered, weighted sequence that
// minimize the position-dependent cost of reaching each element.
//
// Selecting an element among its siblings is not free: depending on the
// access policy, the first position may be cheap and later ones more
// expensive (Linear), the last position may wrap around to be next to the
// first (Wrappable), or every position may cost the same (Constant). Heavy
// elements should therefore end up close to the root and at cheap positions.
//
// Components:
//
// Cost Model:
//   - AccessCosts maps a branching factor and a Policy to per-position costs
//   - Ratios turns costs into the share of weight each position should receive
//
// Partitioners:
//   - RatioSplit greedily cuts a sequence following the ratios (near-linear)
//   - Solve searches every composition with memoization (exponential, exact)
//   - Splits enumerates the compositions the exact search walks through
//
// Orchestration:
//   - Build applies RatioSplit recursively and hands short sequences to Solve
//   - Expand turns the resulting Table into nested groups
//   - Evaluate recomputes the cost of the tree a Table describes
//
// A Table is keyed by the weight Signature of a sequence, not by the identity
// of its elements. Two sequences with the same weights in the same order are
// interchangeable for cost purposes, so they share one entry. This aliasing is
// what keeps the exact search tractable and must not be replaced by an
// identity-based key. A Table is only meaningful for the policy and branching
// factor it was built with; never reuse one across parameter sets.
//
// Nothing in this package touches the filesystem. Computing the full table
// first and applying it afterwards is left to package materialize.
package tree
