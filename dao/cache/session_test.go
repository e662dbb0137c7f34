package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStorage(t *testing.T) (*SessionStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewSessionStorage(rds), mr
}

func TestSessionLifecycle(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()

	if ok, err := s.Consume(ctx, 1, "tok"); err != nil || ok {
		t.Fatalf("empty store consumed: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, 1, "tok", time.Hour); err != nil {
		t.Fatal(err)
	}
	if v, _ := mr.Get("auth:refresh:1"); v == "tok" {
		t.Fatal("refresh token stored in clear")
	}
	if ok, _ := s.Consume(ctx, 1, "other"); ok {
		t.Fatal("foreign token accepted")
	}
	if !mr.Exists("auth:refresh:1") {
		t.Fatal("foreign token dropped the session")
	}
	if ok, err := s.Consume(ctx, 1, "tok"); err != nil || !ok {
		t.Fatalf("live session rejected: ok=%v err=%v", ok, err)
	}
	if ok, _ := s.Consume(ctx, 1, "tok"); ok {
		t.Fatal("token spent twice")
	}

	_ = s.Set(ctx, 1, "old", time.Hour)
	_ = s.Set(ctx, 1, "rotated", time.Hour)
	if ok, _ := s.Consume(ctx, 1, "old"); ok {
		t.Fatal("replaced token still accepted")
	}

	if err := s.Del(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Consume(ctx, 1, "rotated"); ok {
		t.Fatal("deleted session accepted")
	}
}

func TestSessionConsumedOnceUnderContention(t *testing.T) {
	s, _ := newStorage(t)
	ctx := context.Background()
	_ = s.Set(ctx, 3, "tok", time.Hour)

	var (
		wg  sync.WaitGroup
		won atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, err := s.Consume(ctx, 3, "tok"); err == nil && ok {
				won.Add(1)
			}
		}()
	}
	wg.Wait()
	if n := won.Load(); n != 1 {
		t.Fatalf("token consumed %d times", n)
	}
}

func TestSessionExpires(t *testing.T) {
	s, mr := newStorage(t)
	ctx := context.Background()

	_ = s.Set(ctx, 2, "tok", time.Minute)
	mr.FastForward(2 * time.Minute)
	if ok, _ := s.Consume(ctx, 2, "tok"); ok {
		t.Fatal("expired session accepted")
	}
}
