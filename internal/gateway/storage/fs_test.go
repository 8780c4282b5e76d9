package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemUploadDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := NewFilesystem(dir, "https://cdn.eliteclan.ar/")
	if err != nil {
		t.Fatalf("NewFilesystem err: %v", err)
	}
	ctx := context.Background()

	url, err := fs.Upload(ctx, "media/a/b.jpg", []byte{1, 2}, "image/jpeg")
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if url != "https://cdn.eliteclan.ar/media/a/b.jpg" {
		t.Fatalf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "media", "a", "b.jpg")); err != nil {
		t.Fatalf("archivo no escrito: %v", err)
	}

	if err := fs.Delete(ctx, "media/a/b.jpg"); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	// Borrar algo que no existe no es error.
	if err := fs.Delete(ctx, "media/a/b.jpg"); err != nil {
		t.Fatalf("Delete repetido err: %v", err)
	}
}

func TestFilesystemRejectsTraversal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := NewFilesystem(dir, "")
	if err != nil {
		t.Fatalf("NewFilesystem err: %v", err)
	}

	// El path se ancla bajo dir: lo único que importa es que nada
	// termine afuera.
	url, err := fs.Upload(context.Background(), "../../etc/passwd", []byte("x"), "")
	if err == nil {
		if _, statErr := os.Stat(filepath.Join(dir, "etc", "passwd")); statErr != nil {
			t.Fatalf("path traversal escribió fuera del directorio (url=%q)", url)
		}
	}
	if _, statErr := os.Stat(filepath.Join(dir, "..", "etc", "passwd")); statErr == nil {
		t.Fatalf("path traversal escapó del directorio de storage")
	}
}

func TestNewFilesystemRequiresDir(t *testing.T) {
	t.Parallel()

	if _, err := NewFilesystem("", ""); err == nil {
		t.Fatalf("NewFilesystem sin directorio no falló")
	}
}
