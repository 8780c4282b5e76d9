// Package storage implementa los backends de almacenamiento binario de
// media: directorio local o bucket S3. El backend en memoria vive en el
// paquete gateway porque lo usa el modo no configurado.
package storage

import (
	"context"
	"fmt"

	"github.com/eliteclan/backoffice/internal/gateway"
)

// Kind identifica el backend configurado.
type Kind string

const (
	KindFilesystem Kind = "filesystem"
	KindS3         Kind = "s3"
	KindMemory     Kind = "memory"
)

// Options agrupa la configuración de todos los backends; solo se lee la
// sección del Kind elegido.
type Options struct {
	Kind Kind

	// filesystem
	Dir           string
	PublicBaseURL string

	// s3
	Bucket string
	Region string
	Prefix string
}

// New construye el backend según opts.Kind.
func New(ctx context.Context, opts Options) (gateway.Storage, error) {
	switch opts.Kind {
	case KindFilesystem:
		return NewFilesystem(opts.Dir, opts.PublicBaseURL)
	case KindS3:
		return NewS3(ctx, opts.Bucket, opts.Region, opts.Prefix)
	case KindMemory, "":
		return gateway.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("backend de storage desconocido: %q", opts.Kind)
	}
}
