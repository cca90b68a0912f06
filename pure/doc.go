// Package pure provides closure-form memoization for pure functions.
//
// Tableize is not just a utility to add memoization.
// Tableize is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The Tableize family returns a plain func with the same signature as its
// input, backed by a private cachedfn adapter. Use package cachedfn directly
// when you need to copy, move, reset or inspect the table.
//
// Features:
//   - TableizeI1O1 to TableizeI4O2: typed, generic memoizers for common arities.
//   - Inputs must be comparable; the compiler enforces it.
//   - For the O2 variants, a non-nil error in second position is never tabled.
//   - Unbounded table: every distinct input stays for the life of the func.
//
// See tableize_test.go and tableize_bench_test.go for usage and benchmarks.
//
// WARNING: Do not use Tableize on impure functions (e.g., those depending on time, I/O, etc).
// The returned funcs are not safe for concurrent use.
package pure
