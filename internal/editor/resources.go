package editor

import (
	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
)

// Definiciones declarativas de los seis recursos del backoffice. Cada
// una produce un editor ya configurado sobre la colección del gateway.

// Services administra los servicios del colectivo. Restringido a Admin.
func Services(gw *gateway.Gateway) *Editor[content.Service] {
	return New(Config[content.Service]{
		Name:         "services",
		Store:        gw.Services,
		RequiredRole: content.RoleAdmin,
		Blank:        func() content.Service { return content.Service{Base: blankBase()} },
		Fields: content.Schema{
			{Name: "title", Label: "Título", Kind: content.KindText, Required: true},
			{Name: "description", Label: "Descripción", Kind: content.KindTextarea, Required: true},
			{Name: "features", Label: "Características (una por línea)", Kind: content.KindList},
			{Name: "cta_label", Label: "Texto del CTA", Kind: content.KindText},
			{Name: "cta_href", Label: "Link del CTA", Kind: content.KindURL},
			{Name: "category", Label: "Categoría", Kind: content.KindText},
			{Name: "tags", Label: "Tags", Kind: content.KindTags},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

// Shows administra las fechas en vivo.
func Shows(gw *gateway.Gateway) *Editor[content.Show] {
	return New(Config[content.Show]{
		Name:  "shows",
		Store: gw.Shows,
		Blank: func() content.Show { return content.Show{Base: blankBase()} },
		Fields: content.Schema{
			{Name: "title", Label: "Título", Kind: content.KindText, Required: true},
			{Name: "slug", Label: "Slug", Kind: content.KindText, Required: true},
			{Name: "date", Label: "Fecha y hora", Kind: content.KindDatetime, Required: true},
			{Name: "venue", Label: "Venue", Kind: content.KindText, Required: true},
			{Name: "city", Label: "Ciudad", Kind: content.KindText, Required: true},
			{Name: "country", Label: "País", Kind: content.KindText, Required: true},
			{Name: "genre", Label: "Género", Kind: content.KindText},
			{Name: "description", Label: "Descripción", Kind: content.KindTextarea},
			{Name: "setlist", Label: "Setlist (un tema por línea)", Kind: content.KindList},
			{Name: "hero_image", Label: "Imagen principal", Kind: content.KindURL},
			{Name: "tags", Label: "Tags", Kind: content.KindTags},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

// Discography administra el catálogo de lanzamientos.
func Discography(gw *gateway.Gateway) *Editor[content.DiscographyItem] {
	return New(Config[content.DiscographyItem]{
		Name:  "discography",
		Store: gw.Discography,
		Blank: func() content.DiscographyItem { return content.DiscographyItem{Base: blankBase(), Kind: "Album"} },
		Fields: content.Schema{
			{Name: "title", Label: "Título", Kind: content.KindText, Required: true},
			{Name: "type", Label: "Tipo", Kind: content.KindSelect, Options: []content.Option{
				{Label: "Álbum", Value: "Album"},
				{Label: "EP", Value: "EP"},
				{Label: "Single", Value: "Single"},
			}},
			{Name: "year", Label: "Año", Kind: content.KindNumber, Min: f(1900), Max: f(2100)},
			{Name: "cover", Label: "Portada", Kind: content.KindURL},
			{Name: "spotify_embed", Label: "Embed de Spotify", Kind: content.KindURL},
			{Name: "description", Label: "Descripción", Kind: content.KindTextarea},
			{Name: "tags", Label: "Tags", Kind: content.KindTags},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

// Members administra los integrantes. Restringido a Admin.
func Members(gw *gateway.Gateway) *Editor[content.Member] {
	return New(Config[content.Member]{
		Name:         "members",
		Store:        gw.Members,
		RequiredRole: content.RoleAdmin,
		Blank:        func() content.Member { return content.Member{Base: blankBase()} },
		Fields: content.Schema{
			{Name: "title", Label: "Nombre", Kind: content.KindText, Required: true},
			{Name: "role", Label: "Rol en el colectivo", Kind: content.KindText, Required: true},
			{Name: "avatar", Label: "Avatar", Kind: content.KindURL},
			{Name: "bio", Label: "Bio", Kind: content.KindTextarea},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

// Testimonials administra las recomendaciones.
func Testimonials(gw *gateway.Gateway) *Editor[content.Testimonial] {
	return New(Config[content.Testimonial]{
		Name:  "testimonials",
		Store: gw.Testimonials,
		Blank: func() content.Testimonial { return content.Testimonial{Base: blankBase()} },
		Fields: content.Schema{
			{Name: "title", Label: "Título", Kind: content.KindText, Required: true},
			{Name: "name", Label: "Nombre", Kind: content.KindText, Required: true},
			{Name: "quote", Label: "Cita", Kind: content.KindTextarea, Required: true},
			{Name: "role", Label: "Cargo", Kind: content.KindText},
			{Name: "company", Label: "Empresa", Kind: content.KindText},
			{Name: "avatar", Label: "Avatar", Kind: content.KindURL},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

// Events administra la agenda de eventos.
func Events(gw *gateway.Gateway) *Editor[content.UpcomingEvent] {
	return New(Config[content.UpcomingEvent]{
		Name:  "events",
		Store: gw.Events,
		Blank: func() content.UpcomingEvent { return content.UpcomingEvent{Base: blankBase()} },
		Fields: content.Schema{
			{Name: "title", Label: "Título", Kind: content.KindText, Required: true},
			{Name: "starts_at", Label: "Comienza", Kind: content.KindDatetime, Required: true},
			{Name: "venue", Label: "Venue", Kind: content.KindText, Required: true},
			{Name: "city", Label: "Ciudad", Kind: content.KindText},
			{Name: "country", Label: "País", Kind: content.KindText},
			{Name: "format", Label: "Formato", Kind: content.KindText},
			{Name: "ticket_url", Label: "Link de tickets", Kind: content.KindURL},
			{Name: "tags", Label: "Tags", Kind: content.KindTags},
			{Name: "status", Label: "Estado", Kind: content.KindStatus},
		},
	})
}

func blankBase() content.Base {
	return content.Base{Status: content.StatusDraft}
}

func f(v float64) *float64 { return &v }
