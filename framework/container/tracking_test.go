package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-ioc/framework/container"
)

// Invariant 5: for a tracked parent p with children c1..ck created in that
// order, onDispose runs ck, ..., c1, p.
func TestTracking_DisposalOrderIsReverseCreation(t *testing.T) {
	var order []string
	c := container.New(container.WithOnDispose(func(instance any, name string) {
		order = append(order, name)
	}))

	c.Bind("c1", func() any { return "1" })
	c.Bind("c2", func() any { return "2" })
	c.Bind("c3", func() any { return "3" })
	c.Bind("p", func(a, b, cc any) any { return "p" }, "c1", "c2", "c3")

	_, err := c.Get("p")
	require.NoError(t, err)
	require.NoError(t, c.Dispose())

	assert.Equal(t, []string{"c3", "c2", "c1", "p"}, order)
}

// Invariant 6: onDispose runs exactly once per instance per container-dispose.
func TestTracking_DisposeIsIdempotent(t *testing.T) {
	calls := 0
	c := container.New(container.WithOnDispose(func(instance any, name string) {
		calls++
	}))
	c.Singleton("svc", func() any { return "value" })
	_, err := c.Get("svc")
	require.NoError(t, err)

	require.NoError(t, c.Dispose())
	require.NoError(t, c.Dispose()) // second call is a no-op

	assert.Equal(t, 1, calls)
}

// A panicking onDispose hook is recovered, aggregated, and the traversal
// still visits every node.
func TestTracking_PanickingHookIsRecoveredAndAggregated(t *testing.T) {
	var visited []string
	c := container.New(container.WithOnDispose(func(instance any, name string) {
		visited = append(visited, name)
		if name == "c1" {
			panic("boom")
		}
	}))

	c.Bind("c1", func() any { return "1" })
	c.Bind("c2", func() any { return "2" })
	c.Bind("p", func(a, b any) any { return "p" }, "c1", "c2")

	_, err := c.Get("p")
	require.NoError(t, err)

	err = c.Dispose()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "c1")
	assert.ElementsMatch(t, []string{"c1", "c2", "p"}, visited)

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		assert.Len(t, joined.Unwrap(), 1)
	}
}

// Invariant 7: an absent optional dependency resolves to nil, no error.
func TestTracking_OptionalDependencyAbsentIsNil(t *testing.T) {
	c := container.New()
	var captured any
	c.Bind("consumer", func(missing any) any {
		captured = missing
		return "ok"
	}, "notRegistered?")

	got, err := c.Get("consumer")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Nil(t, captured)
}
