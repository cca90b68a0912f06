package cachedfn

import "errors"

// ErrNoTarget is the panic value raised when an adapter without a target is called.
var ErrNoTarget = errors.New("cachedfn: call of adapter with no target")

// ErrTargetType is wrapped by the panic raised from MustTarget on a type mismatch.
var ErrTargetType = errors.New("cachedfn: unexpected target type")
