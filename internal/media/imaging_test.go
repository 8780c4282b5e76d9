package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// testImage genera un JPEG sintético de w×h con un degradado, para que
// la compresión tenga algo que morder.
func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 4 {
		for x := 0; x < w; x += 4 {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("jpeg.Encode err: %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig err: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestProcessDownscales(t *testing.T) {
	t.Parallel()

	main, thumb, err := Process(testImage(t, 3000, 2000))
	if err != nil {
		t.Fatalf("Process err: %v", err)
	}

	if main.Width != 1600 || main.Height != 1067 {
		t.Fatalf("principal %dx%d, esperado 1600x1067", main.Width, main.Height)
	}
	if w, h := decodeSize(t, main.Data); w != main.Width || h != main.Height {
		t.Fatalf("JPEG principal %dx%d no coincide con lo reportado %dx%d", w, h, main.Width, main.Height)
	}

	if thumb.Width != 320 || thumb.Height != 213 {
		t.Fatalf("thumbnail %dx%d, esperado 320x213", thumb.Width, thumb.Height)
	}
	if w, _ := decodeSize(t, thumb.Data); w != 320 {
		t.Fatalf("JPEG thumbnail de ancho %d", w)
	}
}

func TestProcessNeverUpscales(t *testing.T) {
	t.Parallel()

	main, thumb, err := Process(testImage(t, 800, 600))
	if err != nil {
		t.Fatalf("Process err: %v", err)
	}
	if main.Width != 800 || main.Height != 600 {
		t.Fatalf("principal %dx%d, una imagen chica no se agranda", main.Width, main.Height)
	}
	if thumb.Width != 320 || thumb.Height != 240 {
		t.Fatalf("thumbnail %dx%d, esperado 320x240", thumb.Width, thumb.Height)
	}
}

func TestProcessAcceptsPNG(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 400, 300))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode err: %v", err)
	}
	main, _, err := Process(buf.Bytes())
	if err != nil {
		t.Fatalf("Process de PNG err: %v", err)
	}
	// La salida siempre es JPEG.
	if _, format, err := image.Decode(bytes.NewReader(main.Data)); err != nil || format != "jpeg" {
		t.Fatalf("salida format=%q err=%v", format, err)
	}
}

func TestProcessRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, _, err := Process([]byte("no es una imagen")); err == nil {
		t.Fatalf("Process de bytes arbitrarios no falló")
	}
}
