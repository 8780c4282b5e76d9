package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Filesystem guarda binarios bajo un directorio local y arma URLs
// públicas con un prefijo configurado (el server estático las sirve).
type Filesystem struct {
	dir  string
	base string
}

func NewFilesystem(dir, publicBaseURL string) (*Filesystem, error) {
	if dir == "" {
		return nil, fmt.Errorf("directorio de storage vacío")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creando directorio de storage: %w", err)
	}
	return &Filesystem{dir: dir, base: strings.TrimSuffix(publicBaseURL, "/")}, nil
}

func (f *Filesystem) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	clean, err := f.resolve(path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(clean, data, 0o644); err != nil {
		return "", err
	}
	return f.base + "/" + strings.TrimPrefix(path, "/"), nil
}

func (f *Filesystem) Delete(ctx context.Context, path string) error {
	clean, err := f.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// resolve valida que path no escape del directorio base.
func (f *Filesystem) resolve(path string) (string, error) {
	clean := filepath.Join(f.dir, filepath.Clean("/"+path))
	if !strings.HasPrefix(clean, filepath.Clean(f.dir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("path fuera del directorio de storage: %q", path)
	}
	return clean, nil
}
