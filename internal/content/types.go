// Package content define el modelo de contenido del sitio y el editor
// genérico que lo administra.
//
// Todas las variantes (Service, Show, DiscographyItem, Member,
// Testimonial, UpcomingEvent) embeben Base y comparten el mismo ciclo de
// vida: draft/published, timestamps y un historial append-only de
// cambios.
package content

import (
	"sort"
	"time"
)

// Status es el estado de publicación de un contenido.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Role es el rol de un usuario del backoffice. Gatea mutaciones en el
// editor de recursos.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
)

// ChangeLogEntry es un registro inmutable de una edición. Se crea uno
// (y solo uno) por cada guardado exitoso; nunca se edita ni se borra.
type ChangeLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	Change    string    `json:"change"`
	CreatedAt time.Time `json:"created_at"`
}

// Base es la forma común a todas las variantes de contenido.
type Base struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Status    Status           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	History   []ChangeLogEntry `json:"history"`
	Tags      []string         `json:"tags,omitempty"`
}

// Item es el conjunto de capacidades que el editor genérico necesita de
// cualquier variante. Base lo implementa con receivers por valor, así
// cualquier struct que la embeba satisface Item sin código extra.
type Item interface {
	ItemID() string
	ItemTitle() string
	ItemStatus() Status
	ItemHistory() []ChangeLogEntry
}

func (b Base) ItemID() string                { return b.ID }
func (b Base) ItemTitle() string             { return b.Title }
func (b Base) ItemStatus() Status            { return b.Status }
func (b Base) ItemHistory() []ChangeLogEntry { return b.History }

// SortedHistory retorna el historial ordenado del más nuevo al más
// viejo. El orden de almacenamiento es orden de inserción y nunca se
// usa para corrección: el orden de vista se calcula siempre acá.
func SortedHistory(history []ChangeLogEntry) []ChangeLogEntry {
	out := make([]ChangeLogEntry, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MediaProvider clasifica el origen de un embed.
type MediaProvider string

const (
	ProviderYouTube   MediaProvider = "youtube"
	ProviderVimeo     MediaProvider = "vimeo"
	ProviderInstagram MediaProvider = "instagram"
	ProviderUnknown   MediaProvider = "unknown"
)

// MediaKind distingue imágenes subidas de embeds externos.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaEmbed MediaKind = "embed"
)

// MediaAsset es un recurso multimedia registrado. Nunca se muta in
// place: un cambio produce un asset nuevo o es un no-op.
type MediaAsset struct {
	ID           string         `json:"id"`
	Kind         MediaKind      `json:"type"`
	URL          string         `json:"url"`
	Alt          string         `json:"alt,omitempty"`
	Width        int            `json:"width,omitempty"`
	Height       int            `json:"height,omitempty"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Provider     MediaProvider  `json:"provider,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Service es un servicio que ofrece el colectivo.
type Service struct {
	Base
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTALabel    string   `json:"cta_label"`
	CTAHref     string   `json:"cta_href"`
	Category    string   `json:"category,omitempty"`
}

// Show es una fecha en vivo, pasada o futura.
type Show struct {
	Base
	Slug        string       `json:"slug"`
	Date        time.Time    `json:"date"`
	Venue       string       `json:"venue"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Genre       string       `json:"genre,omitempty"`
	Description string       `json:"description"`
	Setlist     []string     `json:"setlist,omitempty"`
	HeroImage   string       `json:"hero_image,omitempty"`
	Media       []MediaAsset `json:"media,omitempty"`
}

// DiscographyItem es un lanzamiento del catálogo.
type DiscographyItem struct {
	Base
	Kind         string `json:"type"` // Album | EP | Single
	Year         int    `json:"year"`
	Cover        string `json:"cover"`
	SpotifyEmbed string `json:"spotify_embed"`
	Description  string `json:"description"`
}

// Member es un integrante del colectivo.
type Member struct {
	Base
	MemberRole string       `json:"role"`
	Avatar     string       `json:"avatar,omitempty"`
	Bio        string       `json:"bio"`
	Social     []SocialLink `json:"social,omitempty"`
}

// SocialLink es un perfil social de un integrante.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Testimonial es una recomendación de un cliente o partner.
type Testimonial struct {
	Base
	Quote   string `json:"quote"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Company string `json:"company,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

// UpcomingEvent es un evento agendado (no necesariamente un show).
type UpcomingEvent struct {
	Base
	StartsAt  time.Time `json:"starts_at"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Format    string    `json:"format,omitempty"`
	TicketURL string    `json:"ticket_url,omitempty"`
}
