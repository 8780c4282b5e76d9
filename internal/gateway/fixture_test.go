package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/eliteclan/backoffice/internal/content"
)

func TestFixtureReads(t *testing.T) {
	t.Parallel()

	gw := NewFixture()
	if gw.Configured {
		t.Fatalf("gateway de fixtures marcado como configurado")
	}

	ctx := context.Background()
	shows, err := gw.Shows.FetchAll(ctx)
	if err != nil {
		t.Fatalf("Shows.FetchAll err: %v", err)
	}
	if len(shows) == 0 {
		t.Fatalf("el dataset embebido no tiene shows")
	}
	services, err := gw.Services.FetchAll(ctx)
	if err != nil {
		t.Fatalf("Services.FetchAll err: %v", err)
	}
	if len(services) == 0 {
		t.Fatalf("el dataset embebido no tiene servicios")
	}
}

func TestFixtureWritesFail(t *testing.T) {
	t.Parallel()

	gw := NewFixture()
	ctx := context.Background()
	actor := Account{ID: "u1", Role: content.RoleAdmin}

	if _, err := gw.Shows.Save(ctx, content.Show{}, actor); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Save err = %v, esperado ErrNotConfigured", err)
	}
	if err := gw.Shows.Delete(ctx, "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Delete err = %v, esperado ErrNotConfigured", err)
	}
	if _, _, err := gw.Auth.PasswordLogin(ctx, "a@b.c", "pw"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("PasswordLogin err = %v, esperado ErrNotConfigured", err)
	}
	// SignOut es best-effort incluso sin backend.
	if err := gw.Auth.SignOut(ctx, "ref"); err != nil {
		t.Fatalf("SignOut err: %v", err)
	}
}

func TestMemoryMedia(t *testing.T) {
	t.Parallel()

	m := newMemoryMedia()
	ctx := context.Background()

	saved, err := m.Register(ctx, content.MediaAsset{Kind: content.MediaImage, URL: "mem://a.jpg"})
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("Register no completó defaults: %+v", saved)
	}

	all, err := m.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll err: %v", err)
	}
	if len(all) != 1 || all[0].ID != saved.ID {
		t.Fatalf("FetchAll = %+v", all)
	}

	if err := m.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if err := m.Delete(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete repetido err = %v, esperado ErrNotFound", err)
	}
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	s := NewMemoryStorage()
	ctx := context.Background()

	url, err := s.Upload(ctx, "media/x/a.jpg", []byte{1, 2, 3}, "image/jpeg")
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if url != "mem://media/x/a.jpg" {
		t.Fatalf("url = %q", url)
	}

	blob, ok := s.Blob("media/x/a.jpg")
	if !ok || len(blob) != 3 {
		t.Fatalf("Blob = %v, ok=%v", blob, ok)
	}

	if err := s.Delete(ctx, "media/x/a.jpg"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if _, ok := s.Blob("media/x/a.jpg"); ok {
		t.Fatalf("el blob sobrevivió al Delete")
	}
}
