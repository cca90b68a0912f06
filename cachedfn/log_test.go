package cachedfn_test

import (
	"testing"

	"github.com/on-the-ground/fcache/cachedfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithLogger_DebugEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := cachedfn.New1(func(n int) int { return n * n }, cachedfn.WithLogger(zap.New(core)))

	f.Call(7)
	f.Call(7)
	f.Call(8)
	f.Reset()

	assert.Equal(t, 1, logs.FilterMessage("target assigned").Len())
	assert.Equal(t, 2, logs.FilterMessage("cache miss").Len())
	assert.Equal(t, 1, logs.FilterMessage("cache hit").Len())

	resets := logs.FilterMessage("cache reset").All()
	require.Len(t, resets, 1)
	assert.EqualValues(t, 2, resets[0].ContextMap()["dropped"])

	ids := map[any]struct{}{}
	for _, entry := range logs.All() {
		ids[entry.ContextMap()["cachedfn_id"]] = struct{}{}
	}
	assert.Len(t, ids, 1)
}

func TestWithLogger_TargetTypeField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cachedfn.New1(squareFn(func(n int) int { return n }), cachedfn.WithLogger(zap.New(core)))

	assigned := logs.FilterMessage("target assigned").All()
	require.Len(t, assigned, 1)
	assert.Equal(t, "cachedfn_test.squareFn", assigned[0].ContextMap()["target_type"])
}

func TestWithLogger_InfoLevelIsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	f := cachedfn.New2(func(a, b int) int { return a + b }, cachedfn.WithLogger(zap.New(core)))

	f.Call(1, 2)
	f.Call(1, 2)
	assert.Equal(t, 0, logs.Len())
}

func TestWithLogger_CloneGetsOwnID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := cachedfn.New1(func(n int) int { return n }, cachedfn.WithLogger(zap.New(core)))
	g := f.Clone()

	f.Call(1)
	g.Call(1)

	misses := logs.FilterMessage("cache miss").All()
	require.Len(t, misses, 2)
	assert.NotEqual(t, misses[0].ContextMap()["cachedfn_id"], misses[1].ContextMap()["cachedfn_id"])
}

func TestWithLogger_Nil(t *testing.T) {
	f := cachedfn.New1(func(n int) int { return n }, cachedfn.WithLogger(nil))
	assert.Equal(t, 1, f.Call(1))
}
