package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counter(calls *int32, value string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestLoadCachesResult(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()
	key := NewKey(FamilyPlaces, "all", "")

	var calls int32
	for i := 0; i < 3; i++ {
		v, err := Load(ctx, c, key, counter(&calls, "list"))
		require.NoError(t, err)
		assert.Equal(t, "list", v)
	}
	assert.Equal(t, int32(1), calls)
	assert.Equal(t, 1, c.Len())
}

func TestLoadDoesNotCacheErrors(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()
	key := NewKey(FamilyReviews, "p1")
	boom := errors.New("connection refused")

	_, err := Load(ctx, c, key, func(context.Context) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	v, err := Load(ctx, c, key, func(context.Context) (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestInvalidateFamilyDropsEveryVariant(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()

	var calls int32
	keys := []Key{
		NewKey(FamilyPlaces, "all", ""),
		NewKey(FamilyPlaces, "cafe", ""),
		NewKey(FamilyPlaces, "cafe", "bean"),
	}
	for _, k := range keys {
		_, err := Load(ctx, c, k, counter(&calls, k.String()))
		require.NoError(t, err)
	}
	single := NewKey(FamilyPlace, "p1")
	_, err := Load(ctx, c, single, counter(&calls, "p1"))
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	c.InvalidateFamily(FamilyPlaces)
	assert.Equal(t, 1, c.Len())

	for _, k := range keys {
		_, err := Load(ctx, c, k, counter(&calls, k.String()))
		require.NoError(t, err)
	}
	assert.Equal(t, int32(7), calls)
}

func TestInvalidateExactKey(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()

	var calls int32
	p1 := NewKey(FamilyPlace, "p1")
	p2 := NewKey(FamilyPlace, "p2")
	_, _ = Load(ctx, c, p1, counter(&calls, "p1"))
	_, _ = Load(ctx, c, p2, counter(&calls, "p2"))

	c.Invalidate(p1)

	_, _ = Load(ctx, c, p2, counter(&calls, "p2"))
	assert.Equal(t, int32(2), calls)
	_, _ = Load(ctx, c, p1, counter(&calls, "p1"))
	assert.Equal(t, int32(3), calls)
}

func TestLoadStartedBeforeInvalidationIsNotStored(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()
	key := NewKey(FamilyReviews, "p1")

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = Load(ctx, c, key, func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
	}()

	<-started
	c.InvalidateFamily(FamilyReviews)
	close(release)
	<-done

	v, err := Load(ctx, c, key, func(context.Context) (string, error) { return "fresh", nil })
	require.NoError(t, err)
	assert.Equal(t, "fresh", v)
}

func TestConcurrentMissesShareOneFetch(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	ctx := context.Background()
	key := NewKey(FamilyPlaces, "all", "")

	var calls int32
	release := make(chan struct{})
	fetch := func(context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "list", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Load(ctx, c, key, fetch)
			assert.NoError(t, err)
			assert.Equal(t, "list", v)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	c := New(Config{Size: 8, TTL: time.Minute})
	key := NewKey(FamilyPlaces, "all", "")

	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (string, error) {
		close(started)
		select {
		case <-release:
			return "list", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := Load(leaderCtx, c, key, fetch)
		leaderErr <- err
	}()
	<-started

	type result struct {
		v   string
		err error
	}
	waiter := make(chan result, 1)
	go func() {
		v, err := Load(context.Background(), c, key, fetch)
		waiter <- result{v, err}
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	got := <-waiter
	require.NoError(t, got.err)
	assert.Equal(t, "list", got.v)

	v, err := Load(context.Background(), c, key, counter(new(int32), "other"))
	require.NoError(t, err)
	assert.Equal(t, "list", v)
}

func TestEntriesExpire(t *testing.T) {
	c := New(Config{Size: 8, TTL: 20 * time.Millisecond})
	ctx := context.Background()
	key := NewKey(FamilyPlace, "p1")

	var calls int32
	_, _ = Load(ctx, c, key, counter(&calls, "v"))
	time.Sleep(60 * time.Millisecond)
	_, _ = Load(ctx, c, key, counter(&calls, "v"))

	assert.Equal(t, int32(2), calls)
}
