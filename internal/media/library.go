// Package media administra la biblioteca multimedia: subida de
// imágenes (con reescalado y thumbnail) y registro de embeds externos.
package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

// Library opera sobre el registro de media y el storage binario del
// gateway.
type Library struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewLibrary(gw *gateway.Gateway) *Library {
	return &Library{gw: gw, log: logger.Named("media")}
}

// List retorna los assets registrados.
func (l *Library) List(ctx context.Context) ([]content.MediaAsset, error) {
	return l.gw.Media.FetchAll(ctx)
}

// Upload sube un archivo y registra el asset. Con optimize intenta
// procesarlo primero (principal + thumbnail, en paralelo); si el
// archivo no es una imagen decodificable, o sin optimize, los bytes van
// al storage tal cual, sin reescalar ni thumbnail. El nombre final
// lleva un id para que dos subidas del mismo archivo no se pisen.
func (l *Library) Upload(ctx context.Context, filename string, data []byte, alt string, optimize bool) (content.MediaAsset, error) {
	if !optimize {
		return l.uploadRaw(ctx, filename, data, alt)
	}

	main, thumb, err := Process(data)
	if err != nil {
		l.log.Warn("archivo no procesable, se sube tal cual",
			zap.String("filename", filename), zap.Error(err))
		return l.uploadRaw(ctx, filename, data, alt)
	}

	id := uuid.NewString()
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	mainPath := fmt.Sprintf("media/%s/%s.jpg", id, base)
	thumbPath := fmt.Sprintf("media/%s/%s_thumb.jpg", id, base)

	var mainURL, thumbURL string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mainURL, err = l.gw.Storage.Upload(gctx, mainPath, main.Data, "image/jpeg")
		return err
	})
	g.Go(func() error {
		var err error
		thumbURL, err = l.gw.Storage.Upload(gctx, thumbPath, thumb.Data, "image/jpeg")
		return err
	})
	if err := g.Wait(); err != nil {
		return content.MediaAsset{}, fmt.Errorf("subiendo imagen: %w", err)
	}

	asset := content.MediaAsset{
		ID:           id,
		Kind:         content.MediaImage,
		URL:          mainURL,
		Alt:          alt,
		Width:        main.Width,
		Height:       main.Height,
		ThumbnailURL: thumbURL,
		Metadata: map[string]any{
			"original_filename": path.Base(filename),
			"storage_path":      mainPath,
			"thumb_path":        thumbPath,
		},
		CreatedAt: time.Now().UTC(),
	}
	saved, err := l.gw.Media.Register(ctx, asset)
	if err != nil {
		return content.MediaAsset{}, err
	}
	l.log.Info("imagen subida",
		zap.String("id", saved.ID),
		zap.Int("width", main.Width),
		zap.Int("height", main.Height))
	return saved, nil
}

// uploadRaw sube los bytes sin procesar. Si igual son una imagen
// decodificable, el asset lleva sus dimensiones reales.
func (l *Library) uploadRaw(ctx context.Context, filename string, data []byte, alt string) (content.MediaAsset, error) {
	id := uuid.NewString()
	name := path.Base(filename)
	storagePath := fmt.Sprintf("media/%s/%s", id, name)

	var width, height int
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = cfg.Width, cfg.Height
	}

	rawURL, err := l.gw.Storage.Upload(ctx, storagePath, data, mime.TypeByExtension(path.Ext(name)))
	if err != nil {
		return content.MediaAsset{}, fmt.Errorf("subiendo archivo: %w", err)
	}

	asset := content.MediaAsset{
		ID:     id,
		Kind:   content.MediaImage,
		URL:    rawURL,
		Alt:    alt,
		Width:  width,
		Height: height,
		Metadata: map[string]any{
			"original_filename": name,
			"storage_path":      storagePath,
		},
		CreatedAt: time.Now().UTC(),
	}
	saved, err := l.gw.Media.Register(ctx, asset)
	if err != nil {
		return content.MediaAsset{}, err
	}
	l.log.Info("archivo subido sin procesar", zap.String("id", saved.ID))
	return saved, nil
}

// RegisterEmbed registra un recurso externo (video, post) clasificando
// el proveedor por dominio.
func (l *Library) RegisterEmbed(ctx context.Context, rawURL, alt string) (content.MediaAsset, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return content.MediaAsset{}, fmt.Errorf("%w: URL de embed inválida", gateway.ErrValidation)
	}

	asset := content.MediaAsset{
		ID:        uuid.NewString(),
		Kind:      content.MediaEmbed,
		URL:       rawURL,
		Alt:       alt,
		Provider:  classifyProvider(u.Host),
		CreatedAt: time.Now().UTC(),
	}
	return l.gw.Media.Register(ctx, asset)
}

// Remove borra el asset del registro y, si era una imagen subida, sus
// binarios del storage. El borrado de binarios es best-effort.
func (l *Library) Remove(ctx context.Context, id string) error {
	assets, err := l.gw.Media.FetchAll(ctx)
	if err != nil {
		return err
	}
	var target *content.MediaAsset
	for i := range assets {
		if assets[i].ID == id {
			target = &assets[i]
			break
		}
	}
	if target == nil {
		return gateway.ErrNotFound
	}

	if err := l.gw.Media.Delete(ctx, id); err != nil {
		return err
	}

	if target.Kind == content.MediaImage {
		for _, key := range []string{"storage_path", "thumb_path"} {
			if p, ok := target.Metadata[key].(string); ok && p != "" {
				if err := l.gw.Storage.Delete(ctx, p); err != nil {
					l.log.Warn("no se pudo borrar binario", zap.String("path", p), zap.Error(err))
				}
			}
		}
	}
	return nil
}

func classifyProvider(host string) content.MediaProvider {
	host = strings.ToLower(strings.TrimPrefix(host, "www."))
	switch {
	case strings.HasSuffix(host, "youtube.com"), host == "youtu.be":
		return content.ProviderYouTube
	case strings.HasSuffix(host, "vimeo.com"):
		return content.ProviderVimeo
	case strings.HasSuffix(host, "instagram.com"):
		return content.ProviderInstagram
	default:
		return content.ProviderUnknown
	}
}
