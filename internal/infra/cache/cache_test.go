package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGetOrCompute_ServesLiveEntry(t *testing.T) {
	c := New(nil)
	ctx := context.Background()
	calls := 0
	fn := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"south", "north"}, nil
	}

	first, err := GetOrCompute(ctx, c, "regions", time.Second, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := GetOrCompute(ctx, c, "regions", time.Second, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("compute invoked %d times within TTL, want 1", calls)
	}
	if len(first) != 2 || len(second) != 2 || second[0] != "south" {
		t.Errorf("cached value mismatch: %v vs %v", first, second)
	}
}

func TestGetOrCompute_RecomputesAfterExpiry(t *testing.T) {
	c := New(nil)
	ctx := context.Background()
	calls := 0
	fn := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	if _, err := GetOrCompute(ctx, c, "regions", 50*time.Millisecond, fn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(60 * time.Millisecond)
	v, err := GetOrCompute(ctx, c, "regions", 50*time.Millisecond, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 2 {
		t.Errorf("compute invoked %d times across expiry, want 2", calls)
	}
	if v != 2 {
		t.Errorf("expected the recomputed value 2, got %d", v)
	}
}

func TestGetOrCompute_PropagatesComputeError(t *testing.T) {
	c := New(nil)
	wantErr := errors.New("upstream down")
	_, err := GetOrCompute(context.Background(), c, "types", time.Second, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected compute error surfaced, got %v", err)
	}

	// A failed compute must not poison the key.
	v, err := GetOrCompute(context.Background(), c, "types", time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if err != nil || v != 42 {
		t.Errorf("expected recovery after failed compute, got %d, %v", v, err)
	}
}

func TestGetOrCompute_KeysAreIndependent(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	a, _ := GetOrCompute(ctx, c, "a", time.Second, func(ctx context.Context) (string, error) { return "alpha", nil })
	b, _ := GetOrCompute(ctx, c, "b", time.Second, func(ctx context.Context) (string, error) { return "beta", nil })

	if a != "alpha" || b != "beta" {
		t.Errorf("cross-key interference: a=%q b=%q", a, b)
	}
}

func TestMemoryStore_InvalidateForcesMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	store.Invalidate("k")

	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("expected miss after invalidate")
	}
}
