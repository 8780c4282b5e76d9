// Package gateway define la interfaz uniforme de acceso a datos del
// backoffice. Toda lectura y escritura (contenido, auth, media, binarios)
// pasa por acá.
//
// Hay exactamente dos modos, elegidos una sola vez al arranque:
//
//   - configurado: Postgres + un backend de almacenamiento binario
//   - no configurado: las lecturas degradan al dataset embebido de
//     fixtures (solo lectura) y las escrituras fallan con
//     ErrNotConfigured
//
// La decisión es una sola verificación de capacidad al construir el
// gateway, no condicionales dispersos por llamada.
package gateway

import (
	"context"
	"time"

	"github.com/eliteclan/backoffice/internal/content"
)

// Account es el usuario autenticado del backoffice.
type Account struct {
	ID         string       `json:"id"`
	Email      string       `json:"email"`
	Role       content.Role `json:"role"`
	MFAEnabled bool         `json:"mfa_enabled"`
	Phone      string       `json:"phone,omitempty"`

	// TOTPSecret es el secreto base32 del segundo factor. Solo viene
	// poblado en la respuesta de PasswordLogin cuando la cuenta tiene
	// MFA: vive en el desafío transitorio y nunca se persiste.
	TOTPSecret string `json:"-"`
}

// Tokens es el bundle de credenciales de una sesión.
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Auth expone las operaciones de autenticación del backend.
type Auth interface {
	// PasswordLogin valida el par email/password. Si la cuenta requiere
	// segundo factor, igual retorna tokens candidatos: el caller no debe
	// activarlos hasta verificar el factor.
	PasswordLogin(ctx context.Context, email, password string) (Account, Tokens, error)

	// Refresh rota el refresh token: revoca el anterior y emite un par
	// nuevo. Un refresh inválido/expirado retorna ErrInvalidCredentials.
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)

	// Validate verifica un access token vigente y reconstruye la cuenta.
	Validate(ctx context.Context, accessToken string) (Account, error)

	// SignOut revoca el refresh token. Best-effort: un token ya revocado
	// no es error.
	SignOut(ctx context.Context, refreshToken string) error
}

// Content es el acceso a una colección de una variante de contenido.
type Content[T content.Item] interface {
	// FetchAll retorna la colección completa.
	FetchAll(ctx context.Context) ([]T, error)

	// Save hace upsert del item y agrega exactamente una entrada al
	// historial. Retorna el registro canónico persistido (con id
	// asignado por el servidor si era nuevo).
	Save(ctx context.Context, item T, actor Account) (T, error)

	// Delete elimina por id. ErrNotFound si no existe.
	Delete(ctx context.Context, id string) error
}

// Media es el registro de assets multimedia.
type Media interface {
	FetchAll(ctx context.Context) ([]content.MediaAsset, error)
	Register(ctx context.Context, asset content.MediaAsset) (content.MediaAsset, error)
	Delete(ctx context.Context, id string) error
}

// Storage es el almacenamiento binario de media.
type Storage interface {
	// Upload guarda bytes en path y retorna la URL pública resultante.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}

// Gateway agrupa todas las colecciones y servicios del backend.
type Gateway struct {
	Services     Content[content.Service]
	Shows        Content[content.Show]
	Discography  Content[content.DiscographyItem]
	Members      Content[content.Member]
	Testimonials Content[content.Testimonial]
	Events       Content[content.UpcomingEvent]

	Auth    Auth
	Media   Media
	Storage Storage

	// Configured indica el modo elegido al arranque.
	Configured bool
}
