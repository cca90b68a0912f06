package cachedfn

import "github.com/on-the-ground/fcache/shared/helper"

type result[O1, O2 any] struct {
	o1 O1
	o2 O2
}

// Caller1O2 is a callable value with a two-result Call method.
type Caller1O2[A1, O1, O2 any] interface {
	Call(A1) (O1, O2)
}

// Caller2O2 is the two-argument form of Caller1O2.
type Caller2O2[A1, A2, O1, O2 any] interface {
	Call(A1, A2) (O1, O2)
}

// Caller3O2 is the three-argument form of Caller1O2.
type Caller3O2[A1, A2, A3, O1, O2 any] interface {
	Call(A1, A2, A3) (O1, O2)
}

// Caller4O2 is the four-argument form of Caller1O2.
type Caller4O2[A1, A2, A3, A4, O1, O2 any] interface {
	Call(A1, A2, A3, A4) (O1, O2)
}

// memoizable reports whether a two-value result may be stored.
// A non-nil error in second position marks a failed call.
func memoizable[O2 any](o2 O2) bool {
	return helper.AsError(o2) == nil
}

// Func1O2 memoizes a target shaped func(A1) (O1, O2).
//
// When the second result is a non-nil error the pair is returned unchanged and
// nothing is stored, so the next call with the same argument invokes the target again.
type Func1O2[A1 comparable, O1, O2 any] struct {
	adapter[A1, result[O1, O2]]
}

// New1O2 returns an adapter holding fn. A nil fn yields an empty adapter.
func New1O2[F ~func(A1) (O1, O2), A1 comparable, O1, O2 any](fn F, opts ...Option) *Func1O2[A1, O1, O2] {
	f := &Func1O2[A1, O1, O2]{}
	f.init(opts)
	Assign1O2(f, fn)
	return f
}

// Assign1O2 replaces the target of f with fn and clears its cache.
func Assign1O2[F ~func(A1) (O1, O2), A1 comparable, O1, O2 any](f *Func1O2[A1, O1, O2], fn F) {
	if (func(A1) (O1, O2))(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, A1, result[O1, O2]]{fn: fn, call: func(fn F, a1 A1) (result[O1, O2], bool) {
		o1, o2 := fn(a1)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Wrap1O2 returns an adapter holding a Caller1O2 value. A nil c yields an empty adapter.
func Wrap1O2[C Caller1O2[A1, O1, O2], A1 comparable, O1, O2 any](c C, opts ...Option) *Func1O2[A1, O1, O2] {
	f := &Func1O2[A1, O1, O2]{}
	f.init(opts)
	AssignCaller1O2(f, c)
	return f
}

// AssignCaller1O2 replaces the target of f with c and clears its cache.
func AssignCaller1O2[C Caller1O2[A1, O1, O2], A1 comparable, O1, O2 any](f *Func1O2[A1, O1, O2], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, A1, result[O1, O2]]{fn: c, call: func(c C, a1 A1) (result[O1, O2], bool) {
		o1, o2 := c.Call(a1)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Call returns the memoized results for a1, invoking the target until it succeeds once.
// It panics with ErrNoTarget if f has no target.
func (f *Func1O2[A1, O1, O2]) Call(a1 A1) (O1, O2) {
	r := f.call(a1)
	return r.o1, r.o2
}

// Clone returns an independent copy of f.
func (f *Func1O2[A1, O1, O2]) Clone() *Func1O2[A1, O1, O2] {
	return &Func1O2[A1, O1, O2]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func1O2[A1, O1, O2]) CopyFrom(other *Func1O2[A1, O1, O2]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func1O2[A1, O1, O2]) Move() *Func1O2[A1, O1, O2] {
	return &Func1O2[A1, O1, O2]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func1O2[A1, O1, O2]) MoveFrom(other *Func1O2[A1, O1, O2]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func1O2[A1, O1, O2]) Swap(other *Func1O2[A1, O1, O2]) {
	f.swap(&other.adapter)
}

// Func2O2 memoizes a target shaped func(A1, A2) (O1, O2).
type Func2O2[A1, A2 comparable, O1, O2 any] struct {
	adapter[args2[A1, A2], result[O1, O2]]
}

// New2O2 returns an adapter holding fn. A nil fn yields an empty adapter.
func New2O2[F ~func(A1, A2) (O1, O2), A1, A2 comparable, O1, O2 any](fn F, opts ...Option) *Func2O2[A1, A2, O1, O2] {
	f := &Func2O2[A1, A2, O1, O2]{}
	f.init(opts)
	Assign2O2(f, fn)
	return f
}

// Assign2O2 replaces the target of f with fn and clears its cache.
func Assign2O2[F ~func(A1, A2) (O1, O2), A1, A2 comparable, O1, O2 any](f *Func2O2[A1, A2, O1, O2], fn F) {
	if (func(A1, A2) (O1, O2))(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args2[A1, A2], result[O1, O2]]{fn: fn, call: func(fn F, k args2[A1, A2]) (result[O1, O2], bool) {
		o1, o2 := fn(k.a1, k.a2)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Wrap2O2 returns an adapter holding a Caller2O2 value. A nil c yields an empty adapter.
func Wrap2O2[C Caller2O2[A1, A2, O1, O2], A1, A2 comparable, O1, O2 any](c C, opts ...Option) *Func2O2[A1, A2, O1, O2] {
	f := &Func2O2[A1, A2, O1, O2]{}
	f.init(opts)
	AssignCaller2O2(f, c)
	return f
}

// AssignCaller2O2 replaces the target of f with c and clears its cache.
func AssignCaller2O2[C Caller2O2[A1, A2, O1, O2], A1, A2 comparable, O1, O2 any](f *Func2O2[A1, A2, O1, O2], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args2[A1, A2], result[O1, O2]]{fn: c, call: func(c C, k args2[A1, A2]) (result[O1, O2], bool) {
		o1, o2 := c.Call(k.a1, k.a2)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Call returns the memoized results, invoking the target until it succeeds once for these arguments.
func (f *Func2O2[A1, A2, O1, O2]) Call(a1 A1, a2 A2) (O1, O2) {
	r := f.call(args2[A1, A2]{a1, a2})
	return r.o1, r.o2
}

// Clone returns an independent copy of f.
func (f *Func2O2[A1, A2, O1, O2]) Clone() *Func2O2[A1, A2, O1, O2] {
	return &Func2O2[A1, A2, O1, O2]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func2O2[A1, A2, O1, O2]) CopyFrom(other *Func2O2[A1, A2, O1, O2]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func2O2[A1, A2, O1, O2]) Move() *Func2O2[A1, A2, O1, O2] {
	return &Func2O2[A1, A2, O1, O2]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func2O2[A1, A2, O1, O2]) MoveFrom(other *Func2O2[A1, A2, O1, O2]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func2O2[A1, A2, O1, O2]) Swap(other *Func2O2[A1, A2, O1, O2]) {
	f.swap(&other.adapter)
}

// Func3O2 memoizes a target shaped func(A1, A2, A3) (O1, O2).
type Func3O2[A1, A2, A3 comparable, O1, O2 any] struct {
	adapter[args3[A1, A2, A3], result[O1, O2]]
}

// New3O2 returns an adapter holding fn. A nil fn yields an empty adapter.
func New3O2[F ~func(A1, A2, A3) (O1, O2), A1, A2, A3 comparable, O1, O2 any](fn F, opts ...Option) *Func3O2[A1, A2, A3, O1, O2] {
	f := &Func3O2[A1, A2, A3, O1, O2]{}
	f.init(opts)
	Assign3O2(f, fn)
	return f
}

// Assign3O2 replaces the target of f with fn and clears its cache.
func Assign3O2[F ~func(A1, A2, A3) (O1, O2), A1, A2, A3 comparable, O1, O2 any](f *Func3O2[A1, A2, A3, O1, O2], fn F) {
	if (func(A1, A2, A3) (O1, O2))(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args3[A1, A2, A3], result[O1, O2]]{fn: fn, call: func(fn F, k args3[A1, A2, A3]) (result[O1, O2], bool) {
		o1, o2 := fn(k.a1, k.a2, k.a3)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Wrap3O2 returns an adapter holding a Caller3O2 value. A nil c yields an empty adapter.
func Wrap3O2[C Caller3O2[A1, A2, A3, O1, O2], A1, A2, A3 comparable, O1, O2 any](c C, opts ...Option) *Func3O2[A1, A2, A3, O1, O2] {
	f := &Func3O2[A1, A2, A3, O1, O2]{}
	f.init(opts)
	AssignCaller3O2(f, c)
	return f
}

// AssignCaller3O2 replaces the target of f with c and clears its cache.
func AssignCaller3O2[C Caller3O2[A1, A2, A3, O1, O2], A1, A2, A3 comparable, O1, O2 any](f *Func3O2[A1, A2, A3, O1, O2], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args3[A1, A2, A3], result[O1, O2]]{fn: c, call: func(c C, k args3[A1, A2, A3]) (result[O1, O2], bool) {
		o1, o2 := c.Call(k.a1, k.a2, k.a3)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Call returns the memoized results, invoking the target until it succeeds once for these arguments.
func (f *Func3O2[A1, A2, A3, O1, O2]) Call(a1 A1, a2 A2, a3 A3) (O1, O2) {
	r := f.call(args3[A1, A2, A3]{a1, a2, a3})
	return r.o1, r.o2
}

// Clone returns an independent copy of f.
func (f *Func3O2[A1, A2, A3, O1, O2]) Clone() *Func3O2[A1, A2, A3, O1, O2] {
	return &Func3O2[A1, A2, A3, O1, O2]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func3O2[A1, A2, A3, O1, O2]) CopyFrom(other *Func3O2[A1, A2, A3, O1, O2]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func3O2[A1, A2, A3, O1, O2]) Move() *Func3O2[A1, A2, A3, O1, O2] {
	return &Func3O2[A1, A2, A3, O1, O2]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func3O2[A1, A2, A3, O1, O2]) MoveFrom(other *Func3O2[A1, A2, A3, O1, O2]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func3O2[A1, A2, A3, O1, O2]) Swap(other *Func3O2[A1, A2, A3, O1, O2]) {
	f.swap(&other.adapter)
}

// Func4O2 memoizes a target shaped func(A1, A2, A3, A4) (O1, O2).
type Func4O2[A1, A2, A3, A4 comparable, O1, O2 any] struct {
	adapter[args4[A1, A2, A3, A4], result[O1, O2]]
}

// New4O2 returns an adapter holding fn. A nil fn yields an empty adapter.
func New4O2[F ~func(A1, A2, A3, A4) (O1, O2), A1, A2, A3, A4 comparable, O1, O2 any](fn F, opts ...Option) *Func4O2[A1, A2, A3, A4, O1, O2] {
	f := &Func4O2[A1, A2, A3, A4, O1, O2]{}
	f.init(opts)
	Assign4O2(f, fn)
	return f
}

// Assign4O2 replaces the target of f with fn and clears its cache.
func Assign4O2[F ~func(A1, A2, A3, A4) (O1, O2), A1, A2, A3, A4 comparable, O1, O2 any](f *Func4O2[A1, A2, A3, A4, O1, O2], fn F) {
	if (func(A1, A2, A3, A4) (O1, O2))(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args4[A1, A2, A3, A4], result[O1, O2]]{fn: fn, call: func(fn F, k args4[A1, A2, A3, A4]) (result[O1, O2], bool) {
		o1, o2 := fn(k.a1, k.a2, k.a3, k.a4)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Wrap4O2 returns an adapter holding a Caller4O2 value. A nil c yields an empty adapter.
func Wrap4O2[C Caller4O2[A1, A2, A3, A4, O1, O2], A1, A2, A3, A4 comparable, O1, O2 any](c C, opts ...Option) *Func4O2[A1, A2, A3, A4, O1, O2] {
	f := &Func4O2[A1, A2, A3, A4, O1, O2]{}
	f.init(opts)
	AssignCaller4O2(f, c)
	return f
}

// AssignCaller4O2 replaces the target of f with c and clears its cache.
func AssignCaller4O2[C Caller4O2[A1, A2, A3, A4, O1, O2], A1, A2, A3, A4 comparable, O1, O2 any](f *Func4O2[A1, A2, A3, A4, O1, O2], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args4[A1, A2, A3, A4], result[O1, O2]]{fn: c, call: func(c C, k args4[A1, A2, A3, A4]) (result[O1, O2], bool) {
		o1, o2 := c.Call(k.a1, k.a2, k.a3, k.a4)
		return result[O1, O2]{o1, o2}, memoizable(o2)
	}})
}

// Call returns the memoized results, invoking the target until it succeeds once for these arguments.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) Call(a1 A1, a2 A2, a3 A3, a4 A4) (O1, O2) {
	r := f.call(args4[A1, A2, A3, A4]{a1, a2, a3, a4})
	return r.o1, r.o2
}

// Clone returns an independent copy of f.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) Clone() *Func4O2[A1, A2, A3, A4, O1, O2] {
	return &Func4O2[A1, A2, A3, A4, O1, O2]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) CopyFrom(other *Func4O2[A1, A2, A3, A4, O1, O2]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) Move() *Func4O2[A1, A2, A3, A4, O1, O2] {
	return &Func4O2[A1, A2, A3, A4, O1, O2]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) MoveFrom(other *Func4O2[A1, A2, A3, A4, O1, O2]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func4O2[A1, A2, A3, A4, O1, O2]) Swap(other *Func4O2[A1, A2, A3, A4, O1, O2]) {
	f.swap(&other.adapter)
}
