// Package cachedfn provides memoizing function adapters.
//
// A cached function wraps a target callable with a fixed signature and
// remembers every result it returns, keyed by the exact argument values.
// A repeated call with equal arguments returns the stored result without
// invoking the target again.
//
// Go has no variadic type parameters, so adapters come in fixed arities:
//   - Func1 to Func4: targets shaped func(A1..An) R.
//   - Func1O2 to Func4O2: targets shaped func(A1..An) (O1, O2). When O2 is a
//     non-nil error the result is passed through and not memoized.
//
// Arguments must be comparable; the compiler rejects anything else.
// Equality is Go's ==, with no normalization (a NaN argument never hits).
//
// Value semantics:
//
//	f := cachedfn.New1(square)     // construct from a callable
//	g := f.Clone()                 // deep copy: target and cache
//	h := f.Move()                  // transfer: f is left empty
//	cachedfn.Assign1(h, cube)      // new target, cache cleared
//	h.Reset()                      // back to the empty state
//
// The zero value of every adapter is a valid empty adapter. Copy adapters
// with Clone or CopyFrom: a plain struct copy shares the cache.
// Calling an empty adapter panics with ErrNoTarget.
//
// The cache is unbounded and never evicts. Adapters are NOT safe for
// concurrent use: they take no locks, and concurrent calls on one adapter
// are a data race.
package cachedfn
