package internal

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

func TestCache(t *testing.T) {
	t.Parallel()
	cache := NewCache()

	proved := tt.Report{Interval: "(0, 4]", Outcome: tt.OutcomeProved, Iterations: 11, PeakUnproven: 4}

	t.Run("SaveAndLoad", func(t *testing.T) {
		cache.Set(proved)
		got, found := cache.Get("(0, 4]", 0)
		assert.True(t, found)
		assert.Equal(t, proved, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get("(9, 10]", 0)
		assert.False(t, found)
	})

	t.Run("LimitBelowCachedRounds", func(t *testing.T) {
		_, found := cache.Get("(0, 4]", 10)
		assert.False(t, found)
		_, found = cache.Get("(0, 4]", 11)
		assert.True(t, found)
	})

	t.Run("InconclusiveNotStored", func(t *testing.T) {
		cache.Set(tt.Report{Interval: "(0, 10]", Outcome: tt.OutcomeInconclusive, Iterations: 5})
		_, found := cache.Get("(0, 10]", 0)
		assert.False(t, found)
	})
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()
	cache := NewCache()
	cache.SetMaxAge(time.Millisecond)
	cache.Set(tt.Report{Interval: "(1, 2]", Outcome: tt.OutcomeProved, Iterations: 1})

	time.Sleep(10 * time.Millisecond)

	_, found := cache.Get("(1, 2]", 0)
	assert.False(t, found)
	assert.Zero(t, cache.Len())
}

func TestCache_InvalidateAll(t *testing.T) {
	t.Parallel()
	cache := NewCache()
	cache.Set(tt.Report{Interval: "(1, 2]", Outcome: tt.OutcomeProved, Iterations: 1})
	require.Equal(t, 1, cache.Len())

	cache.InvalidateAll()
	assert.Zero(t, cache.Len())
}

func TestCacheWithEngine(t *testing.T) {
	t.Parallel()
	cache := NewCache()
	engine, err := NewEngine(nil, Settings{Cache: cache})
	require.NoError(t, err)

	first, err := engine.Run(context.Background(), "( 0 , 4 ]")
	require.NoError(t, err)
	require.True(t, first.Proved())
	assert.Equal(t, 1, cache.Len())

	// the key is the normalized interval, so any spelling hits
	second, err := engine.Run(context.Background(), "(0, 4]")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	limited, err := NewEngine(nil, Settings{MaxIterations: 3, Cache: cache})
	require.NoError(t, err)
	report, err := limited.Run(context.Background(), "(0, 4]")
	require.NoError(t, err)
	assert.Equal(t, tt.OutcomeInconclusive, report.Outcome)
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		expr := fmt.Sprintf("(%d, %d]", i%10, i%10+1)
		go func() {
			defer wg.Done()
			cache.Set(tt.Report{Interval: expr, Outcome: tt.OutcomeProved, Iterations: 1})
		}()
		go func() {
			defer wg.Done()
			_, _ = cache.Get(expr, 0)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, cache.Len())
}
