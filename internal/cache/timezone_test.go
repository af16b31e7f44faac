package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/leadwise-ai/scheduling-platform/pkg/logging"
)

func newTestCache(t *testing.T) (*TimezoneCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTimezoneCache(rdb, time.Hour, logging.Default()), mr
}

func TestResolveCachesFetchResult(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "America/Chicago", nil
	}

	for i := 0; i < 3; i++ {
		tz, err := c.Resolve(ctx, "highlevel", "loc-1", fetch)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if tz != "America/Chicago" {
			t.Fatalf("tz = %s", tz)
		}
	}
	if fetches != 1 {
		t.Fatalf("fetches = %d, want 1", fetches)
	}
}

func TestResolveExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(ctx context.Context) (string, error) {
		fetches++
		return "America/Denver", nil
	}

	if _, err := c.Resolve(ctx, "cal", "loc-2", fetch); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	mr.FastForward(2 * time.Hour)
	if _, err := c.Resolve(ctx, "cal", "loc-2", fetch); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if fetches != 2 {
		t.Fatalf("fetches = %d, want 2 after expiry", fetches)
	}
}

func TestResolveFetchErrorPropagates(t *testing.T) {
	c, _ := newTestCache(t)
	wantErr := errors.New("location lookup failed")

	_, err := c.Resolve(context.Background(), "cal", "loc-3", func(ctx context.Context) (string, error) {
		return "", wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestResolveWithoutRedisClient(t *testing.T) {
	c := NewTimezoneCache(nil, 0, nil)
	tz, err := c.Resolve(context.Background(), "cal", "loc-4", func(ctx context.Context) (string, error) {
		return "UTC", nil
	})
	if err != nil || tz != "UTC" {
		t.Fatalf("tz = %s, err = %v", tz, err)
	}
}
