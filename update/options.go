// SPDX-License-Identifier: MIT

// Package update: functional configuration for the numeric policy of the
// update facades. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package update

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural
	// checks: strict-upper entries with |v| ≤ eps count as structural zeros,
	// Cholesky diagonals with |v| ≤ eps count as zero pivots.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles the strict finite-value ingestion scan
	// over L, d and x before any mutation.
	DefaultValidateNaNInf = true

	// DefaultCheckStructure toggles the O(n²) strict-upper-triangle scan and
	// the diagonal-pivot scan before any mutation.
	DefaultCheckStructure = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "update: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	checkStructure bool    // DefaultCheckStructure
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - eps governs structure checks only; the kernels themselves never
//     compare against it.
//
// AI-Hints:
//   - Factors from a clean external factorizer carry exact upper zeros;
//     raise eps only for factors that passed through lossy storage.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf disables the pre-mutation NaN/Inf ingestion scan.
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Non-finite inputs then surface as ErrNumericalDegeneracy mid-run
//     (partial mutation) instead of a clean pre-mutation rejection.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Keep validation enabled unless the caller already sanitizes inputs;
//     the scan is O(n²) worst case, same order as the update.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSkipStructureCheck disables the strict-upper-triangle and
// diagonal-pivot pre-scans.
// Implementation:
//   - Stage 1: set checkStructure=false.
//
// Behavior highlights:
//   - Shape checks (nil, square, lengths, N>0) still run; only the O(n²)
//     structural scans are skipped.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Malformed factors then produce numerically wrong results or
//     ErrNumericalDegeneracy instead of ErrNotLowerTriangular.
//
// AI-Hints:
//   - Safe in tight loops where L/d only ever pass through these kernels:
//     both updaters preserve the structural invariants they require.
func WithSkipStructureCheck() Option {
	return func(o *Options) { o.checkStructure = false }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for both facades.
// Implementation:
//   - Stage 1: start from Default* constants (single source of truth).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		checkStructure: DefaultCheckStructure,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
