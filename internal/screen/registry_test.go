package screen_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"social-admin-dashboard/internal/screen"
)

type closer struct {
	closed atomic.Bool
}

func (c *closer) Close() { c.closed.Store(true) }

func TestRegistry(t *testing.T) {
	t.Run("GetOrCreate reuses", func(t *testing.T) {
		r := screen.NewRegistry[*closer](10, time.Minute)
		a, created := r.GetOrCreate("s1", "content", func() *closer { return &closer{} })
		require.True(t, created)
		b, created := r.GetOrCreate("s1", "content", func() *closer { return &closer{} })
		assert.False(t, created)
		assert.Same(t, a, b)
	})

	t.Run("CloseSession unmounts only that session", func(t *testing.T) {
		r := screen.NewRegistry[*closer](10, time.Minute)
		c1, _ := r.GetOrCreate("s1", "content", func() *closer { return &closer{} })
		u1, _ := r.GetOrCreate("s1", "users", func() *closer { return &closer{} })
		c2, _ := r.GetOrCreate("s2", "content", func() *closer { return &closer{} })

		assert.Equal(t, 2, r.CloseSession("s1"))
		assert.True(t, c1.closed.Load())
		assert.True(t, u1.closed.Load())
		assert.False(t, c2.closed.Load())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("Eviction unmounts", func(t *testing.T) {
		r := screen.NewRegistry[*closer](1, time.Minute)
		first, _ := r.GetOrCreate("s1", "content", func() *closer { return &closer{} })
		r.GetOrCreate("s2", "content", func() *closer { return &closer{} })
		assert.True(t, first.closed.Load())
	})

	t.Run("Remove", func(t *testing.T) {
		r := screen.NewRegistry[*closer](10, time.Minute)
		c, _ := r.GetOrCreate("s1", "content", func() *closer { return &closer{} })
		assert.True(t, r.Remove("s1", "content"))
		assert.True(t, c.closed.Load())
		_, ok := r.Get("s1", "content")
		assert.False(t, ok)
	})
}

func TestDebouncer(t *testing.T) {
	d := screen.NewDebouncer(20 * time.Millisecond)
	var fired atomic.Int32
	var last atomic.Int32

	for i := int32(1); i <= 3; i++ {
		v := i
		d.Trigger(func() {
			fired.Add(1)
			last.Store(v)
		})
	}
	assert.True(t, d.Pending())

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), last.Load())
	assert.False(t, d.Pending())

	d.Trigger(func() { fired.Add(1) })
	d.Stop()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}
