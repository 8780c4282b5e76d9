package media

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
)

func TestLibraryUploadAndRemove(t *testing.T) {
	t.Parallel()

	gw := gateway.NewFixture()
	lib := NewLibrary(gw)
	ctx := context.Background()

	asset, err := lib.Upload(ctx, "fotos/show en vivo.png", testImage(t, 2400, 1600), "Show en Niceto", true)
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if asset.Kind != content.MediaImage {
		t.Fatalf("Kind = %q", asset.Kind)
	}
	if asset.Width != 1600 {
		t.Fatalf("Width = %d, esperado 1600", asset.Width)
	}
	if !strings.HasPrefix(asset.URL, "mem://media/") || !strings.HasSuffix(asset.URL, "/show en vivo.jpg") {
		t.Fatalf("URL = %q", asset.URL)
	}
	if !strings.HasSuffix(asset.ThumbnailURL, "_thumb.jpg") {
		t.Fatalf("ThumbnailURL = %q", asset.ThumbnailURL)
	}

	// Ambos binarios quedaron en el storage.
	store := gw.Storage.(*gateway.MemoryStorage)
	mainPath, _ := asset.Metadata["storage_path"].(string)
	thumbPath, _ := asset.Metadata["thumb_path"].(string)
	if _, ok := store.Blob(mainPath); !ok {
		t.Fatalf("binario principal ausente en %q", mainPath)
	}
	if _, ok := store.Blob(thumbPath); !ok {
		t.Fatalf("thumbnail ausente en %q", thumbPath)
	}

	// El asset aparece en la lista.
	all, err := lib.List(ctx)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(all) != 1 || all[0].ID != asset.ID {
		t.Fatalf("List = %+v", all)
	}

	// Remove borra registro y binarios.
	if err := lib.Remove(ctx, asset.ID); err != nil {
		t.Fatalf("Remove err: %v", err)
	}
	if _, ok := store.Blob(mainPath); ok {
		t.Fatalf("el binario principal sobrevivió al Remove")
	}
	if err := lib.Remove(ctx, asset.ID); !errors.Is(err, gateway.ErrNotFound) {
		t.Fatalf("Remove repetido err = %v", err)
	}
}

func TestLibraryUploadNonImageFallsThroughToRaw(t *testing.T) {
	t.Parallel()

	gw := gateway.NewFixture()
	lib := NewLibrary(gw)
	data := []byte("%PDF-1.4 no es una imagen")

	// Con optimize pero bytes no decodificables el archivo sube tal cual.
	asset, err := lib.Upload(context.Background(), "notas.pdf", data, "", true)
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	if asset.ThumbnailURL != "" {
		t.Fatalf("ThumbnailURL = %q para un archivo no imagen", asset.ThumbnailURL)
	}
	p, _ := asset.Metadata["storage_path"].(string)
	blob, ok := gw.Storage.(*gateway.MemoryStorage).Blob(p)
	if !ok {
		t.Fatalf("binario ausente en %q", p)
	}
	if !bytes.Equal(blob, data) {
		t.Fatalf("el binario subido difiere del original")
	}
}

func TestLibraryUploadRaw(t *testing.T) {
	t.Parallel()

	gw := gateway.NewFixture()
	lib := NewLibrary(gw)
	data := testImage(t, 2400, 1600)

	asset, err := lib.Upload(context.Background(), "afiche.jpg", data, "", false)
	if err != nil {
		t.Fatalf("Upload err: %v", err)
	}
	// Sin optimizar: ni reescalado ni thumbnail, dimensiones originales.
	if asset.Width != 2400 || asset.Height != 1600 {
		t.Fatalf("dimensiones %dx%d, esperado 2400x1600", asset.Width, asset.Height)
	}
	if asset.ThumbnailURL != "" {
		t.Fatalf("un upload raw no genera thumbnail: %q", asset.ThumbnailURL)
	}

	store := gw.Storage.(*gateway.MemoryStorage)
	p, _ := asset.Metadata["storage_path"].(string)
	blob, ok := store.Blob(p)
	if !ok {
		t.Fatalf("binario ausente en %q", p)
	}
	if len(blob) != len(data) {
		t.Fatalf("los bytes se alteraron: %d vs %d", len(blob), len(data))
	}
}

func TestRegisterEmbed(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(gateway.NewFixture())
	ctx := context.Background()

	cases := []struct {
		url  string
		want content.MediaProvider
	}{
		{"https://www.youtube.com/watch?v=abc123", content.ProviderYouTube},
		{"https://youtu.be/abc123", content.ProviderYouTube},
		{"https://vimeo.com/12345", content.ProviderVimeo},
		{"https://www.instagram.com/p/xyz/", content.ProviderInstagram},
		{"https://otro.test/video", content.ProviderUnknown},
	}
	for _, c := range cases {
		asset, err := lib.RegisterEmbed(ctx, c.url, "clip")
		if err != nil {
			t.Fatalf("RegisterEmbed(%q) err: %v", c.url, err)
		}
		if asset.Provider != c.want {
			t.Fatalf("provider de %q = %q, esperado %q", c.url, asset.Provider, c.want)
		}
		if asset.Kind != content.MediaEmbed {
			t.Fatalf("Kind = %q", asset.Kind)
		}
	}

	for _, bad := range []string{"", "no-es-url", "solo/un/path"} {
		if _, err := lib.RegisterEmbed(ctx, bad, ""); !errors.Is(err, gateway.ErrValidation) {
			t.Fatalf("RegisterEmbed(%q) err = %v, esperado ErrValidation", bad, err)
		}
	}
}
