// Package fixtures contiene el dataset embebido del sitio: el mismo
// contenido estático que se muestra cuando no hay backend configurado
// o cuando una lectura remota falla. Es de solo lectura: cada función
// retorna slices frescos para que ningún caller pueda mutar el origen.
package fixtures

import (
	"time"

	"github.com/eliteclan/backoffice/internal/content"
)

// base arma la Base de un fixture: siempre publicado, sin historial,
// timestamps del momento de la consulta (igual que hacía el sitio).
func base(id, title string, tags ...string) content.Base {
	now := time.Now().UTC()
	return content.Base{
		ID:        id,
		Title:     title,
		Status:    content.StatusPublished,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      tags,
	}
}

func at(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// Members y Events no tienen fixtures: el sitio original arrancaba con
// esas colecciones vacías.

// Members retorna la colección vacía de integrantes.
func Members() []content.Member { return []content.Member{} }

// Events retorna la agenda vacía.
func Events() []content.UpcomingEvent { return []content.UpcomingEvent{} }

// MediaLibrary retorna la biblioteca vacía de assets.
func MediaLibrary() []content.MediaAsset { return []content.MediaAsset{} }
