package gateway

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway/fixtures"
)

// NewFixture construye el gateway en modo no configurado: las lecturas
// sirven el dataset embebido, las escrituras de contenido fallan con
// ErrNotConfigured y la biblioteca de media existe solo en memoria
// (dura lo que dura el proceso).
func NewFixture() *Gateway {
	return &Gateway{
		Services:     fixtureContent[content.Service]{fetch: fixtures.Services},
		Shows:        fixtureContent[content.Show]{fetch: fixtures.Shows},
		Discography:  fixtureContent[content.DiscographyItem]{fetch: fixtures.Discography},
		Members:      fixtureContent[content.Member]{fetch: fixtures.Members},
		Testimonials: fixtureContent[content.Testimonial]{fetch: fixtures.Testimonials},
		Events:       fixtureContent[content.UpcomingEvent]{fetch: fixtures.Events},
		Auth:         fixtureAuth{},
		Media:        newMemoryMedia(),
		Storage:      NewMemoryStorage(),
		Configured:   false,
	}
}

// fixtureContent sirve una colección embebida de solo lectura.
type fixtureContent[T content.Item] struct {
	fetch func() []T
}

func (c fixtureContent[T]) FetchAll(ctx context.Context) ([]T, error) {
	return c.fetch(), nil
}

func (c fixtureContent[T]) Save(ctx context.Context, item T, actor Account) (T, error) {
	var zero T
	return zero, ErrNotConfigured
}

func (c fixtureContent[T]) Delete(ctx context.Context, id string) error {
	return ErrNotConfigured
}

// fixtureAuth rechaza toda operación remota de auth. El flujo de
// credenciales de respaldo vive en la máquina de autenticación, no acá.
type fixtureAuth struct{}

func (fixtureAuth) PasswordLogin(ctx context.Context, email, password string) (Account, Tokens, error) {
	return Account{}, Tokens{}, ErrNotConfigured
}

func (fixtureAuth) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	return Tokens{}, ErrNotConfigured
}

func (fixtureAuth) Validate(ctx context.Context, accessToken string) (Account, error) {
	return Account{}, ErrNotConfigured
}

func (fixtureAuth) SignOut(ctx context.Context, refreshToken string) error {
	return nil
}

// memoryMedia es el registro efímero de assets. Los registros se
// pierden al terminar el proceso, igual que en el sitio sin backend.
type memoryMedia struct {
	mu     sync.RWMutex
	assets map[string]content.MediaAsset
}

func newMemoryMedia() *memoryMedia {
	return &memoryMedia{assets: make(map[string]content.MediaAsset)}
}

func (m *memoryMedia) FetchAll(ctx context.Context) ([]content.MediaAsset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]content.MediaAsset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memoryMedia) Register(ctx context.Context, asset content.MediaAsset) (content.MediaAsset, error) {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now().UTC()
	}
	m.mu.Lock()
	m.assets[asset.ID] = asset
	m.mu.Unlock()
	return asset, nil
}

func (m *memoryMedia) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assets[id]; !ok {
		return ErrNotFound
	}
	delete(m.assets, id)
	return nil
}

// MemoryStorage guarda binarios en memoria y entrega URLs mem://. Sirve
// para el modo no configurado y para pruebas.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.mu.Lock()
	s.blobs[path] = cp
	s.mu.Unlock()
	return fmt.Sprintf("mem://%s", path), nil
}

func (s *MemoryStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

// Blob retorna una copia del binario guardado en path, para pruebas.
func (s *MemoryStorage) Blob(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true
}
