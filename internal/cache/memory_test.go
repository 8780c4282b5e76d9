package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSetDelete(t *testing.T) {
	t.Parallel()

	c := NewMemory("test")
	ctx := context.Background()

	if _, err := c.Get(ctx, "k"); !IsNotFound(err) {
		t.Fatalf("Get de clave ausente: err = %v", err)
	}
	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	v, err := c.Get(ctx, "k")
	if err != nil || v != "v" {
		t.Fatalf("Get = %q, err=%v", v, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, err := c.Get(ctx, "k"); !IsNotFound(err) {
		t.Fatalf("Get tras Delete: err = %v", err)
	}
}

func TestMemoryPrefixIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := NewMemory("a")
	b := NewMemory("b")
	if err := a.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set err: %v", err)
	}
	if _, err := b.Get(ctx, "k"); !IsNotFound(err) {
		t.Fatalf("clave de otra instancia visible")
	}
	if err := a.Ping(ctx); err != nil {
		t.Fatalf("Ping err: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close err: %v", err)
	}
}
