package cachedfn

import (
	"maps"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// callable is the type-erased target held by an adapter.
// K carries the call arguments; invoke reports whether the result may be memoized.
type callable[K comparable, R any] interface {
	invoke(K) (R, bool)
	clone() callable[K, R]
	ref() any
	typ() reflect.Type
}

// holder stores a concrete target value F together with the code that unpacks K into a call on it.
type holder[F any, K comparable, R any] struct {
	fn   F
	call func(F, K) (R, bool)
}

func (h *holder[F, K, R]) invoke(key K) (R, bool) {
	return h.call(h.fn, key)
}

func (h *holder[F, K, R]) clone() callable[K, R] {
	c := *h
	return &c
}

func (h *holder[F, K, R]) ref() any {
	return &h.fn
}

func (h *holder[F, K, R]) typ() reflect.Type {
	return reflect.TypeFor[F]()
}

// adapter is the arity-independent part of every cached function: one optional
// target and the results it produced so far.
//
// this is safe only in a single goroutine – NEVER share across goroutines
type adapter[K comparable, R any] struct {
	target callable[K, R]
	cache  map[K]R
	logger *zap.Logger
	id     string
}

func (a *adapter[K, R]) init(opts []Option) {
	a.logger = newConfig(opts).logger
}

// HasTarget reports whether a target is held.
func (a *adapter[K, R]) HasTarget() bool {
	return a.target != nil
}

// TargetType returns the concrete type of the held target, or nil when empty.
// It is meant for diagnostics and has no effect on caching.
func (a *adapter[K, R]) TargetType() reflect.Type {
	if a.target == nil {
		return nil
	}
	return a.target.typ()
}

// Len returns the number of memoized results.
func (a *adapter[K, R]) Len() int {
	return len(a.cache)
}

// Reset drops the target and every memoized result, leaving the adapter empty.
func (a *adapter[K, R]) Reset() {
	dropped := len(a.cache)
	a.target = nil
	a.cache = nil
	a.debug("cache reset", zap.Int("dropped", dropped))
}

func (a *adapter[K, R]) targetRef() (any, bool) {
	if a.target == nil {
		return nil, false
	}
	return a.target.ref(), true
}

func (a *adapter[K, R]) call(key K) R {
	if v, ok := a.cache[key]; ok {
		a.debug("cache hit")
		return v
	}

	target := a.target
	if target == nil {
		panic(ErrNoTarget)
	}
	a.debug("cache miss")

	v, keep := target.invoke(key)
	// The target may have been replaced while it ran; its result belongs to the old cache.
	if keep && a.target == target {
		if a.cache == nil {
			a.cache = make(map[K]R)
		}
		a.cache[key] = v
	}
	return v
}

func (a *adapter[K, R]) assign(target callable[K, R]) {
	a.target = target
	a.cache = nil
	a.debug("target assigned", a.targetTypeField())
}

func (a *adapter[K, R]) clone() adapter[K, R] {
	c := adapter[K, R]{
		cache:  maps.Clone(a.cache),
		logger: a.logger,
	}
	if a.target != nil {
		c.target = a.target.clone()
	}
	return c
}

func (a *adapter[K, R]) copyFrom(other *adapter[K, R]) {
	if a == other {
		return
	}
	c := other.clone()
	a.target, a.cache = c.target, c.cache
	a.debug("copied", a.targetTypeField())
}

func (a *adapter[K, R]) move() adapter[K, R] {
	m := adapter[K, R]{
		target: a.target,
		cache:  a.cache,
		logger: a.logger,
		id:     a.id,
	}
	a.target, a.cache, a.id = nil, nil, ""
	return m
}

func (a *adapter[K, R]) moveFrom(other *adapter[K, R]) {
	if a == other {
		return
	}
	a.target, a.cache = other.target, other.cache
	other.target, other.cache = nil, nil
	a.debug("moved", a.targetTypeField())
}

func (a *adapter[K, R]) swap(other *adapter[K, R]) {
	a.target, other.target = other.target, a.target
	a.cache, other.cache = other.cache, a.cache
}

func (a *adapter[K, R]) debug(msg string, fields ...zap.Field) {
	logger := a.logger
	if logger == nil {
		return
	}
	if ce := logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(append(fields,
			zap.String("cachedfn_id", a.ident()),
			zap.Int("entries", len(a.cache)),
		)...)
	}
}

// ident returns the instance id used in log fields, created on first use.
func (a *adapter[K, R]) ident() string {
	if a.id == "" {
		a.id = uuid.New().String()
	}
	return a.id
}

func (a *adapter[K, R]) targetTypeField() zap.Field {
	if t := a.TargetType(); t != nil {
		return zap.String("target_type", t.String())
	}
	return zap.String("target_type", "<empty>")
}
