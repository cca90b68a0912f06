package cachedfn_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/on-the-ground/fcache/cachedfn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func TestFunc1O2_ErrorIsNotMemoized(t *testing.T) {
	count := 0
	ready := false
	f := cachedfn.New1O2(func(key string) (int, error) {
		count++
		if !ready {
			return 0, errNotFound
		}
		return len(key), nil
	})

	_, err := f.Call("abc")
	assert.ErrorIs(t, err, errNotFound)
	_, err = f.Call("abc")
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, f.Len())

	ready = true
	v, err := f.Call("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	ready = false
	v, err = f.Call("abc") // cached success
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, count)
}

func TestFunc1O2_NonErrorSecondResult(t *testing.T) {
	count := 0
	f := cachedfn.New1O2(func(i int) (int, string) {
		count++
		return i, "val"
	})

	a, b := f.Call(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := f.Call(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

type statusErr struct {
	status int
}

func (e *statusErr) Error() string {
	return "status " + strconv.Itoa(e.status)
}

func TestFunc1O2_TypedNilErrorIsSuccess(t *testing.T) {
	count := 0
	f := cachedfn.New1O2(func(n int) (int, *statusErr) {
		count++
		if n < 0 {
			return 0, &statusErr{status: 400}
		}
		return n * 2, nil
	})

	v, err := f.Call(1)
	assert.Nil(t, err)
	assert.Equal(t, 2, v)
	v, err = f.Call(1)
	assert.Nil(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, f.Len())

	_, err = f.Call(-1)
	require.NotNil(t, err)
	assert.Equal(t, 400, err.status)
	_, _ = f.Call(-1)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, f.Len())
}

type directory struct {
	entries map[string]int
	lookups int
}

func (d *directory) Call(name string) (int, error) {
	d.lookups++
	if v, ok := d.entries[name]; ok {
		return v, nil
	}
	return 0, errNotFound
}

func TestWrap1O2(t *testing.T) {
	d := &directory{entries: map[string]int{"ada": 36}}
	f := cachedfn.Wrap1O2[*directory, string, int, error](d)

	v, err := f.Call("ada")
	require.NoError(t, err)
	assert.Equal(t, 36, v)
	_, _ = f.Call("ada")
	assert.Equal(t, 1, d.lookups)

	_, err = f.Call("bob")
	assert.ErrorIs(t, err, errNotFound)
	d.entries["bob"] = 41
	v, err = f.Call("bob")
	require.NoError(t, err)
	assert.Equal(t, 41, v)
	assert.Equal(t, 3, d.lookups)

	got, ok := cachedfn.Target[*directory](f)
	require.True(t, ok)
	assert.Same(t, d, *got)

	cachedfn.AssignCaller1O2[*directory](f, nil)
	assert.False(t, f.HasTarget())
	assert.Equal(t, 0, f.Len())

	var nilCaller cachedfn.Caller1O2[string, int, error]
	g := cachedfn.Wrap1O2[cachedfn.Caller1O2[string, int, error], string, int, error](nilCaller)
	assert.False(t, g.HasTarget())
	assert.PanicsWithValue(t, cachedfn.ErrNoTarget, func() {
		g.Call("ada")
	})
}

func TestFunc1O2_ValueSemantics(t *testing.T) {
	f := cachedfn.New1O2(strconv.Atoi)
	_, err := f.Call("x")
	assert.Error(t, err)
	n, err := f.Call("12")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	g := f.Clone()
	assert.Equal(t, 1, g.Len())

	h := g.Move()
	assert.False(t, g.HasTarget())
	assert.Equal(t, 1, h.Len())

	g.Swap(h)
	assert.True(t, g.HasTarget())
	assert.False(t, h.HasTarget())

	h.CopyFrom(g)
	h.Call("13")
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, g.Len())

	f.MoveFrom(h)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, 0, h.Len())

	cachedfn.Assign1O2[func(string) (int, error)](f, nil)
	assert.False(t, f.HasTarget())
}

func TestFunc2O2(t *testing.T) {
	count := 0
	f := cachedfn.New2O2(func(a, b int) (int, error) {
		count++
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	q, err := f.Call(9, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, q)
	_, _ = f.Call(9, 3)
	assert.Equal(t, 1, count)

	_, err = f.Call(1, 0)
	assert.Error(t, err)
	_, err = f.Call(1, 0)
	assert.Error(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 1, f.Len())
}

func TestFunc3O2(t *testing.T) {
	count := 0
	f := cachedfn.New3O2(func(a, b, c int) (int, string) {
		count++
		return a + b + c, "sum"
	})

	x, y := f.Call(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "sum", y)
	_, _ = f.Call(1, 2, 3)
	assert.Equal(t, 1, count)

	cachedfn.Assign3O2(f, func(a, b, c int) (int, string) {
		count++
		return a * b * c, "product"
	})
	x, y = f.Call(1, 2, 3)
	assert.Equal(t, 6, x)
	assert.Equal(t, "product", y)
	assert.Equal(t, 2, count)
}

func TestFunc4O2(t *testing.T) {
	count := 0
	f := cachedfn.New4O2(func(a, b, c, d int) (int, string) {
		count++
		return a * b * c * d, "product"
	})

	x, y := f.Call(1, 2, 3, 4)
	assert.Equal(t, 24, x)
	assert.Equal(t, "product", y)
	_, _ = f.Call(1, 2, 3, 4)
	assert.Equal(t, 1, count)

	var empty cachedfn.Func4O2[int, int, int, int, int, string]
	assert.PanicsWithValue(t, cachedfn.ErrNoTarget, func() {
		empty.Call(1, 2, 3, 4)
	})
}

type rect struct{}

func (rect) Call(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, errors.New("negative side")
	}
	return w * h, nil
}

func TestWrap2O2(t *testing.T) {
	f := cachedfn.Wrap2O2[rect, int, int, int, error](rect{})
	v, err := f.Call(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
	_, err = f.Call(-1, 4)
	assert.Error(t, err)
	assert.Equal(t, 1, f.Len())
}
