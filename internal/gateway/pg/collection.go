package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
)

// Collection es el acceso genérico a una colección de contenido. Todas
// las variantes comparten la misma tabla (content_item) discriminada
// por nombre de colección; el ítem completo vive en el doc jsonb.
type Collection[T content.Item] struct {
	store *Store
	name  string
	noun  string // para los resúmenes del historial: "show", "servicio"...

	// fallback es el dataset embebido que se sirve cuando la lectura
	// remota falla. Las escrituras nunca degradan.
	fallback func() []T
}

func (c *Collection[T]) FetchAll(ctx context.Context) ([]T, error) {
	rows, err := c.store.pool.Query(ctx, `
		SELECT doc FROM content_item
		WHERE collection = $1
		ORDER BY updated_at DESC
	`, c.name)
	if err != nil {
		return c.degrade(err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return c.degrade(err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return c.degrade(err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return c.degrade(err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Collection[T]) degrade(err error) ([]T, error) {
	c.store.log.Warn("lectura remota falló, sirviendo dataset embebido",
		zap.String("collection", c.name), zap.Error(err))
	return c.fallback(), nil
}

// Save hace upsert y agrega exactamente una entrada al historial. El
// historial canónico es el de la fila existente, no el que trae el
// ítem: así dos guardados concurrentes no pueden pisarse entradas.
func (c *Collection[T]) Save(ctx context.Context, item T, actor gateway.Account) (T, error) {
	var zero T
	now := time.Now().UTC()

	doc := make(map[string]any)
	raw, err := json.Marshal(item)
	if err != nil {
		return zero, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return zero, err
	}

	id := item.ItemID()
	isNew := id == ""
	if isNew {
		id = uuid.NewString()
		doc["id"] = id
		doc["created_at"] = now
	}

	history := []content.ChangeLogEntry{}
	if !isNew {
		var existing []byte
		err := c.store.pool.QueryRow(ctx, `
			SELECT doc -> 'history' FROM content_item
			WHERE collection = $1 AND id = $2
		`, c.name, id).Scan(&existing)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			// id provisto por el caller pero inexistente: se trata como alta
			isNew = true
			if zeroCreatedAt(doc["created_at"]) {
				doc["created_at"] = now
			}
		case err != nil:
			return zero, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
		default:
			if len(existing) > 0 {
				if err := json.Unmarshal(existing, &history); err != nil {
					return zero, err
				}
			}
		}
	}

	verb := "Actualización"
	if isNew {
		verb = "Alta"
	}
	history = append(history, content.ChangeLogEntry{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserEmail: actor.Email,
		Change:    fmt.Sprintf("%s de %s: %s", verb, c.noun, item.ItemTitle()),
		CreatedAt: now,
	})
	doc["history"] = history
	doc["updated_at"] = now

	finalDoc, err := json.Marshal(doc)
	if err != nil {
		return zero, err
	}

	_, err = c.store.pool.Exec(ctx, `
		INSERT INTO content_item (collection, id, title, status, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		ON CONFLICT (collection, id)
		DO UPDATE SET title = EXCLUDED.title,
		              status = EXCLUDED.status,
		              doc = EXCLUDED.doc,
		              updated_at = EXCLUDED.updated_at
	`, c.name, id, item.ItemTitle(), string(item.ItemStatus()), finalDoc, now)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}

	var saved T
	if err := json.Unmarshal(finalDoc, &saved); err != nil {
		return zero, err
	}
	return saved, nil
}

// zeroCreatedAt reporta si el doc no trae un created_at utilizable:
// ausente, vacío, no parseable, o el cero de time.Time serializado
// ("0001-01-01T00:00:00Z").
func zeroCreatedAt(v any) bool {
	s, _ := v.(string)
	t, err := time.Parse(time.RFC3339Nano, s)
	return err != nil || t.IsZero()
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.store.pool.Exec(ctx, `
		DELETE FROM content_item WHERE collection = $1 AND id = $2
	`, c.name, id)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
