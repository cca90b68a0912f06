package cachedfn

import (
	"fmt"
	"reflect"

	"github.com/on-the-ground/fcache/shared/helper"
)

// Introspector is implemented by every adapter in this package.
type Introspector interface {
	HasTarget() bool
	TargetType() reflect.Type
	targetRef() (any, bool)
}

// Target returns a pointer to the target held by f if its concrete type is exactly T.
// It returns (nil, false) when f is empty or holds a target of another type.
//
// The pointer refers to the adapter's own copy of the target: it stays valid until
// the target is replaced, and a Clone holds a separate copy.
func Target[T any](f Introspector) (*T, bool) {
	return helper.GetTypedValueOf[*T](f.targetRef)
}

// MustTarget is the panic-on-failure variant of Target.
func MustTarget[T any](f Introspector) *T {
	target, ok := Target[T](f)
	if !ok {
		panic(fmt.Errorf("%w: want %v, held %v", ErrTargetType, reflect.TypeFor[T](), f.TargetType()))
	}
	return target
}
