package pg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
)

// MediaRegistry implementa gateway.Media sobre la tabla media_asset.
type MediaRegistry struct {
	store *Store
}

func (m *MediaRegistry) FetchAll(ctx context.Context) ([]content.MediaAsset, error) {
	rows, err := m.store.pool.Query(ctx, `
		SELECT doc FROM media_asset ORDER BY created_at DESC
	`)
	if err != nil {
		m.store.log.Warn("lectura de media falló, sirviendo vacío", zap.Error(err))
		return []content.MediaAsset{}, nil
	}
	defer rows.Close()

	out := []content.MediaAsset{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var a content.MediaAsset
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (m *MediaRegistry) Register(ctx context.Context, asset content.MediaAsset) (content.MediaAsset, error) {
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	if asset.CreatedAt.IsZero() {
		asset.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(asset)
	if err != nil {
		return content.MediaAsset{}, err
	}
	_, err = m.store.pool.Exec(ctx, `
		INSERT INTO media_asset (id, doc, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
	`, asset.ID, doc, asset.CreatedAt)
	if err != nil {
		return content.MediaAsset{}, fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	return asset, nil
}

func (m *MediaRegistry) Delete(ctx context.Context, id string) error {
	tag, err := m.store.pool.Exec(ctx, `DELETE FROM media_asset WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: %v", gateway.ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return gateway.ErrNotFound
	}
	return nil
}
