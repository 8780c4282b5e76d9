package media

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Decoders registrados por efecto secundario.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// MaxWidth es el ancho máximo de la imagen principal; ThumbWidth el
	// del thumbnail. Nunca se agranda una imagen más chica.
	MaxWidth   = 1600
	ThumbWidth = 320

	mainQuality  = 90
	thumbQuality = 80
)

// Processed es el resultado de procesar una imagen subida.
type Processed struct {
	Data   []byte
	Width  int
	Height int
}

// Process decodifica data y genera la versión principal (ancho máximo
// MaxWidth) y el thumbnail (ancho ThumbWidth), ambos JPEG.
func Process(data []byte) (main Processed, thumb Processed, err error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Processed{}, Processed{}, fmt.Errorf("decodificando imagen: %w", err)
	}

	main, err = scaleTo(src, MaxWidth, mainQuality)
	if err != nil {
		return Processed{}, Processed{}, err
	}
	thumb, err = scaleTo(src, ThumbWidth, thumbQuality)
	if err != nil {
		return Processed{}, Processed{}, err
	}
	return main, thumb, nil
}

// scaleTo reescala src a maxWidth preservando la proporción. CatmullRom
// es el filtro más caro pero el resultado se guarda una sola vez.
func scaleTo(src image.Image, maxWidth, quality int) (Processed, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if w > maxWidth {
		// Redondeo al vecino más cercano para no perder un pixel por
		// truncamiento en proporciones no exactas.
		h = int(float64(h)*float64(maxWidth)/float64(w) + 0.5)
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return Processed{}, fmt.Errorf("codificando jpeg: %w", err)
	}
	return Processed{Data: buf.Bytes(), Width: w, Height: h}, nil
}
