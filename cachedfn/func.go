package cachedfn

import "github.com/on-the-ground/fcache/shared/helper"

type args2[A1, A2 comparable] struct {
	a1 A1
	a2 A2
}

type args3[A1, A2, A3 comparable] struct {
	a1 A1
	a2 A2
	a3 A3
}

type args4[A1, A2, A3, A4 comparable] struct {
	a1 A1
	a2 A2
	a3 A3
	a4 A4
}

// Caller1 is a callable value with a Call method instead of a func type.
type Caller1[A1, R any] interface {
	Call(A1) R
}

// Caller2 is the two-argument form of Caller1.
type Caller2[A1, A2, R any] interface {
	Call(A1, A2) R
}

// Caller3 is the three-argument form of Caller1.
type Caller3[A1, A2, A3, R any] interface {
	Call(A1, A2, A3) R
}

// Caller4 is the four-argument form of Caller1.
type Caller4[A1, A2, A3, A4, R any] interface {
	Call(A1, A2, A3, A4) R
}

// Func1 memoizes a target shaped func(A1) R.
type Func1[A1 comparable, R any] struct {
	adapter[A1, R]
}

// New1 returns an adapter holding fn. A nil fn yields an empty adapter.
//
// fn may be of any type whose underlying type is func(A1) R; Target recovers it by that type.
func New1[F ~func(A1) R, A1 comparable, R any](fn F, opts ...Option) *Func1[A1, R] {
	f := &Func1[A1, R]{}
	f.init(opts)
	Assign1(f, fn)
	return f
}

// Wrap1 returns an adapter holding a Caller1 value.
// A nil c (nil interface, pointer, map, func or chan) yields an empty adapter.
func Wrap1[C Caller1[A1, R], A1 comparable, R any](c C, opts ...Option) *Func1[A1, R] {
	f := &Func1[A1, R]{}
	f.init(opts)
	AssignCaller1(f, c)
	return f
}

// AssignCaller1 replaces the target of f with c and clears its cache.
// Assigning a nil c is the same as f.Reset().
func AssignCaller1[C Caller1[A1, R], A1 comparable, R any](f *Func1[A1, R], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, A1, R]{fn: c, call: func(c C, a1 A1) (R, bool) {
		return c.Call(a1), true
	}})
}

// Assign1 replaces the target of f with fn and clears its cache.
// Assigning a nil fn is the same as f.Reset().
func Assign1[F ~func(A1) R, A1 comparable, R any](f *Func1[A1, R], fn F) {
	if (func(A1) R)(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, A1, R]{fn: fn, call: func(fn F, a1 A1) (R, bool) {
		return fn(a1), true
	}})
}

// Call returns the memoized result for a1, invoking the target only on the first call.
// It panics with ErrNoTarget if f has no target.
func (f *Func1[A1, R]) Call(a1 A1) R {
	return f.call(a1)
}

// Clone returns an independent copy of f: its own copy of the target and of every memoized result.
func (f *Func1[A1, R]) Clone() *Func1[A1, R] {
	return &Func1[A1, R]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func1[A1, R]) CopyFrom(other *Func1[A1, R]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func1[A1, R]) Move() *Func1[A1, R] {
	return &Func1[A1, R]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func1[A1, R]) MoveFrom(other *Func1[A1, R]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges targets and caches with other.
func (f *Func1[A1, R]) Swap(other *Func1[A1, R]) {
	f.swap(&other.adapter)
}

// Func2 memoizes a target shaped func(A1, A2) R.
type Func2[A1, A2 comparable, R any] struct {
	adapter[args2[A1, A2], R]
}

// New2 returns an adapter holding fn. A nil fn yields an empty adapter.
func New2[F ~func(A1, A2) R, A1, A2 comparable, R any](fn F, opts ...Option) *Func2[A1, A2, R] {
	f := &Func2[A1, A2, R]{}
	f.init(opts)
	Assign2(f, fn)
	return f
}

// Wrap2 returns an adapter holding a Caller2 value. A nil c yields an empty adapter.
func Wrap2[C Caller2[A1, A2, R], A1, A2 comparable, R any](c C, opts ...Option) *Func2[A1, A2, R] {
	f := &Func2[A1, A2, R]{}
	f.init(opts)
	AssignCaller2(f, c)
	return f
}

// AssignCaller2 replaces the target of f with c and clears its cache.
func AssignCaller2[C Caller2[A1, A2, R], A1, A2 comparable, R any](f *Func2[A1, A2, R], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args2[A1, A2], R]{fn: c, call: func(c C, k args2[A1, A2]) (R, bool) {
		return c.Call(k.a1, k.a2), true
	}})
}

// Assign2 replaces the target of f with fn and clears its cache.
func Assign2[F ~func(A1, A2) R, A1, A2 comparable, R any](f *Func2[A1, A2, R], fn F) {
	if (func(A1, A2) R)(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args2[A1, A2], R]{fn: fn, call: func(fn F, k args2[A1, A2]) (R, bool) {
		return fn(k.a1, k.a2), true
	}})
}

// Call returns the memoized result, invoking the target only on the first call with these arguments.
func (f *Func2[A1, A2, R]) Call(a1 A1, a2 A2) R {
	return f.call(args2[A1, A2]{a1, a2})
}

// Clone returns an independent copy of f.
func (f *Func2[A1, A2, R]) Clone() *Func2[A1, A2, R] {
	return &Func2[A1, A2, R]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func2[A1, A2, R]) CopyFrom(other *Func2[A1, A2, R]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func2[A1, A2, R]) Move() *Func2[A1, A2, R] {
	return &Func2[A1, A2, R]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func2[A1, A2, R]) MoveFrom(other *Func2[A1, A2, R]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func2[A1, A2, R]) Swap(other *Func2[A1, A2, R]) {
	f.swap(&other.adapter)
}

// Func3 memoizes a target shaped func(A1, A2, A3) R.
type Func3[A1, A2, A3 comparable, R any] struct {
	adapter[args3[A1, A2, A3], R]
}

// New3 returns an adapter holding fn. A nil fn yields an empty adapter.
func New3[F ~func(A1, A2, A3) R, A1, A2, A3 comparable, R any](fn F, opts ...Option) *Func3[A1, A2, A3, R] {
	f := &Func3[A1, A2, A3, R]{}
	f.init(opts)
	Assign3(f, fn)
	return f
}

// Wrap3 returns an adapter holding a Caller3 value. A nil c yields an empty adapter.
func Wrap3[C Caller3[A1, A2, A3, R], A1, A2, A3 comparable, R any](c C, opts ...Option) *Func3[A1, A2, A3, R] {
	f := &Func3[A1, A2, A3, R]{}
	f.init(opts)
	AssignCaller3(f, c)
	return f
}

// AssignCaller3 replaces the target of f with c and clears its cache.
func AssignCaller3[C Caller3[A1, A2, A3, R], A1, A2, A3 comparable, R any](f *Func3[A1, A2, A3, R], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args3[A1, A2, A3], R]{fn: c, call: func(c C, k args3[A1, A2, A3]) (R, bool) {
		return c.Call(k.a1, k.a2, k.a3), true
	}})
}

// Assign3 replaces the target of f with fn and clears its cache.
func Assign3[F ~func(A1, A2, A3) R, A1, A2, A3 comparable, R any](f *Func3[A1, A2, A3, R], fn F) {
	if (func(A1, A2, A3) R)(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args3[A1, A2, A3], R]{fn: fn, call: func(fn F, k args3[A1, A2, A3]) (R, bool) {
		return fn(k.a1, k.a2, k.a3), true
	}})
}

// Call returns the memoized result, invoking the target only on the first call with these arguments.
func (f *Func3[A1, A2, A3, R]) Call(a1 A1, a2 A2, a3 A3) R {
	return f.call(args3[A1, A2, A3]{a1, a2, a3})
}

// Clone returns an independent copy of f.
func (f *Func3[A1, A2, A3, R]) Clone() *Func3[A1, A2, A3, R] {
	return &Func3[A1, A2, A3, R]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func3[A1, A2, A3, R]) CopyFrom(other *Func3[A1, A2, A3, R]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func3[A1, A2, A3, R]) Move() *Func3[A1, A2, A3, R] {
	return &Func3[A1, A2, A3, R]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func3[A1, A2, A3, R]) MoveFrom(other *Func3[A1, A2, A3, R]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func3[A1, A2, A3, R]) Swap(other *Func3[A1, A2, A3, R]) {
	f.swap(&other.adapter)
}

// Func4 memoizes a target shaped func(A1, A2, A3, A4) R.
type Func4[A1, A2, A3, A4 comparable, R any] struct {
	adapter[args4[A1, A2, A3, A4], R]
}

// New4 returns an adapter holding fn. A nil fn yields an empty adapter.
func New4[F ~func(A1, A2, A3, A4) R, A1, A2, A3, A4 comparable, R any](fn F, opts ...Option) *Func4[A1, A2, A3, A4, R] {
	f := &Func4[A1, A2, A3, A4, R]{}
	f.init(opts)
	Assign4(f, fn)
	return f
}

// Wrap4 returns an adapter holding a Caller4 value. A nil c yields an empty adapter.
func Wrap4[C Caller4[A1, A2, A3, A4, R], A1, A2, A3, A4 comparable, R any](c C, opts ...Option) *Func4[A1, A2, A3, A4, R] {
	f := &Func4[A1, A2, A3, A4, R]{}
	f.init(opts)
	AssignCaller4(f, c)
	return f
}

// AssignCaller4 replaces the target of f with c and clears its cache.
func AssignCaller4[C Caller4[A1, A2, A3, A4, R], A1, A2, A3, A4 comparable, R any](f *Func4[A1, A2, A3, A4, R], c C) {
	if helper.IsNil(c) {
		f.Reset()
		return
	}
	f.assign(&holder[C, args4[A1, A2, A3, A4], R]{fn: c, call: func(c C, k args4[A1, A2, A3, A4]) (R, bool) {
		return c.Call(k.a1, k.a2, k.a3, k.a4), true
	}})
}

// Assign4 replaces the target of f with fn and clears its cache.
func Assign4[F ~func(A1, A2, A3, A4) R, A1, A2, A3, A4 comparable, R any](f *Func4[A1, A2, A3, A4, R], fn F) {
	if (func(A1, A2, A3, A4) R)(fn) == nil {
		f.Reset()
		return
	}
	f.assign(&holder[F, args4[A1, A2, A3, A4], R]{fn: fn, call: func(fn F, k args4[A1, A2, A3, A4]) (R, bool) {
		return fn(k.a1, k.a2, k.a3, k.a4), true
	}})
}

// Call returns the memoized result, invoking the target only on the first call with these arguments.
func (f *Func4[A1, A2, A3, A4, R]) Call(a1 A1, a2 A2, a3 A3, a4 A4) R {
	return f.call(args4[A1, A2, A3, A4]{a1, a2, a3, a4})
}

// Clone returns an independent copy of f.
func (f *Func4[A1, A2, A3, A4, R]) Clone() *Func4[A1, A2, A3, A4, R] {
	return &Func4[A1, A2, A3, A4, R]{adapter: f.clone()}
}

// CopyFrom replaces the target and cache of f with copies of other's.
func (f *Func4[A1, A2, A3, A4, R]) CopyFrom(other *Func4[A1, A2, A3, A4, R]) {
	f.copyFrom(&other.adapter)
}

// Move returns a new adapter owning the target and cache of f, leaving f empty.
func (f *Func4[A1, A2, A3, A4, R]) Move() *Func4[A1, A2, A3, A4, R] {
	return &Func4[A1, A2, A3, A4, R]{adapter: f.move()}
}

// MoveFrom takes the target and cache of other, leaving other empty.
func (f *Func4[A1, A2, A3, A4, R]) MoveFrom(other *Func4[A1, A2, A3, A4, R]) {
	f.moveFrom(&other.adapter)
}

// Swap exchanges the targets and caches of f and other.
func (f *Func4[A1, A2, A3, A4, R]) Swap(other *Func4[A1, A2, A3, A4, R]) {
	f.swap(&other.adapter)
}
