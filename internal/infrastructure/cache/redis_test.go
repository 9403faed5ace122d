package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func TestOpenRedis(t *testing.T) {
	s := miniredis.RunT(t)

	c, err := OpenRedis(s.Addr(), 1)
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	if got := c.Options().DB; got != 1 {
		t.Fatalf("client DB = %d, want 1", got)
	}

	// Round-trip a lock-style SetNX, the pattern the sweeper and the
	// idempotency layer rely on.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	ok, err := c.SetNX(ctx, "lock:loan-sweep", "1", time.Minute).Result()
	if err != nil || !ok {
		t.Fatalf("SetNX: ok=%v err=%v", ok, err)
	}
	ok, err = c.SetNX(ctx, "lock:loan-sweep", "1", time.Minute).Result()
	if err != nil || ok {
		t.Fatalf("second SetNX must not win: ok=%v err=%v", ok, err)
	}
}

func TestOpenRedis_Unreachable(t *testing.T) {
	// Unresolvable host: Ping must fail before the caller starts serving.
	if _, err := OpenRedis("credscore-redis.invalid:6379", 0); err == nil {
		t.Fatal("expected error, got nil")
	}
}
