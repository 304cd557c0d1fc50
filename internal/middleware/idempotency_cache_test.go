package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/coffeemaker-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMemoryIdempotencyStore_GetSet(t *testing.T) {
	store := NewMemoryIdempotencyStore()
	defer store.Stop()
	ctx := context.Background()

	hits := testutil.ToFloat64(metrics.IdempotencyOperationsTotal.WithLabelValues(memoryBackend, "hit"))
	misses := testutil.ToFloat64(metrics.IdempotencyOperationsTotal.WithLabelValues(memoryBackend, "miss"))

	_, ok := store.Get(ctx, "missing")
	assert.False(t, ok)

	value := []byte(`{"brewed":true}`)
	store.Set(ctx, "k", value, time.Minute)
	value[0] = 'X'

	got, ok := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, `{"brewed":true}`, string(got))

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.IdempotencyOperationsTotal.WithLabelValues(memoryBackend, "hit")))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.IdempotencyOperationsTotal.WithLabelValues(memoryBackend, "miss")))
}

func TestMemoryIdempotencyStore_Expiry(t *testing.T) {
	store := NewMemoryIdempotencyStore()
	defer store.Stop()
	ctx := context.Background()

	store.Set(ctx, "short", []byte("a"), 10*time.Millisecond)
	store.Set(ctx, "long", []byte("b"), time.Hour)
	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get(ctx, "short")
	assert.False(t, ok)
	assert.Equal(t, 2, store.Len())

	store.cleanup()
	assert.Equal(t, 1, store.Len())
	_, ok = store.Get(ctx, "long")
	assert.True(t, ok)
}

func TestMemoryIdempotencyStore_StopTwice(t *testing.T) {
	store := NewMemoryIdempotencyStore()
	assert.NotPanics(t, func() {
		store.Stop()
		store.Stop()
	})
}
