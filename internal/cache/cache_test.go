package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1, 0)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New[string, string]()

	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("k", "v", time.Minute)

	_, ok := c.Get("k")
	require.True(t, ok)

	now = func() time.Time { return base.Add(2 * time.Minute) }
	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestLenAndPurge(t *testing.T) {
	c := New[string, int]()

	base := time.Now()
	now = func() time.Time { return base }
	defer func() { now = time.Now }()

	c.Set("forever", 1, 0)
	c.Set("short", 2, time.Second)
	require.Equal(t, 2, c.Len())

	now = func() time.Time { return base.Add(time.Hour) }
	require.Equal(t, 1, c.Len())

	c.PurgeExpired()
	require.Equal(t, 1, c.Len())

	c.Delete("forever")
	require.Equal(t, 0, c.Len())
}
