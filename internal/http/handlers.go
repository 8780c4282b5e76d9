// Package http expone el API público de solo lectura del sitio:
// colecciones de contenido publicadas, biblioteca de media y un
// snapshot agregado para hidratar el front en una sola request.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eliteclan/backoffice/internal/cache"
	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

// API agrupa las dependencias de los handlers.
type API struct {
	GW       *gateway.Gateway
	Cache    cache.Client
	CacheTTL time.Duration

	log *zap.Logger
}

func NewAPI(gw *gateway.Gateway, c cache.Client, ttl time.Duration) *API {
	return &API{GW: gw, Cache: c, CacheTTL: ttl, log: logger.Named("api")}
}

// cached sirve el valor cacheado bajo key o lo computa con fn y lo
// guarda. Un fallo de cache nunca falla la request.
func (a *API) cached(w http.ResponseWriter, r *http.Request, key string, fn func(ctx context.Context) (any, error)) {
	ctx := r.Context()

	if a.Cache != nil {
		if hit, err := a.Cache.Get(ctx, key); err == nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("X-Cache", "hit")
			_, _ = w.Write([]byte(hit))
			return
		}
	}

	v, err := fn(ctx)
	if err != nil {
		logger.From(ctx).Error("lectura de contenido falló", zap.String("key", key), zap.Error(err))
		WriteError(w, http.StatusServiceUnavailable, "unavailable", "el contenido no está disponible")
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal", "error serializando respuesta")
		return
	}
	if a.Cache != nil {
		if err := a.Cache.Set(ctx, key, string(body), a.CacheTTL); err != nil {
			a.log.Warn("no se pudo cachear", zap.String("key", key), zap.Error(err))
		}
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(body)
}

// published filtra los ítems en borrador: el API público solo sirve
// contenido publicado.
func published[T content.Item](items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.ItemStatus() == content.StatusPublished {
			out = append(out, it)
		}
	}
	return out
}

func listHandler[T content.Item](a *API, key string, col gateway.Content[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.cached(w, r, key, func(ctx context.Context) (any, error) {
			items, err := col.FetchAll(ctx)
			if err != nil {
				return nil, err
			}
			return published(items), nil
		})
	}
}

func (a *API) handleServices() http.HandlerFunc {
	return listHandler(a, "content:services", a.GW.Services)
}
func (a *API) handleShows() http.HandlerFunc {
	return listHandler(a, "content:shows", a.GW.Shows)
}
func (a *API) handleDiscography() http.HandlerFunc {
	return listHandler(a, "content:discography", a.GW.Discography)
}
func (a *API) handleMembers() http.HandlerFunc {
	return listHandler(a, "content:members", a.GW.Members)
}
func (a *API) handleTestimonials() http.HandlerFunc {
	return listHandler(a, "content:testimonials", a.GW.Testimonials)
}
func (a *API) handleEvents() http.HandlerFunc {
	return listHandler(a, "content:events", a.GW.Events)
}

func (a *API) handleMedia(w http.ResponseWriter, r *http.Request) {
	a.cached(w, r, "content:media", func(ctx context.Context) (any, error) {
		return a.GW.Media.FetchAll(ctx)
	})
}

// snapshot es el payload agregado de todo el sitio.
type snapshot struct {
	Services     []content.Service         `json:"services"`
	Shows        []content.Show            `json:"shows"`
	Discography  []content.DiscographyItem `json:"discography"`
	Members      []content.Member          `json:"members"`
	Testimonials []content.Testimonial     `json:"testimonials"`
	Events       []content.UpcomingEvent   `json:"events"`
	Media        []content.MediaAsset      `json:"media"`
}

// handleSnapshot junta todas las colecciones en paralelo.
func (a *API) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	a.cached(w, r, "content:snapshot", func(ctx context.Context) (any, error) {
		var snap snapshot
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			items, err := a.GW.Services.FetchAll(gctx)
			if err == nil {
				snap.Services = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Shows.FetchAll(gctx)
			if err == nil {
				snap.Shows = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Discography.FetchAll(gctx)
			if err == nil {
				snap.Discography = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Members.FetchAll(gctx)
			if err == nil {
				snap.Members = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Testimonials.FetchAll(gctx)
			if err == nil {
				snap.Testimonials = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Events.FetchAll(gctx)
			if err == nil {
				snap.Events = published(items)
			}
			return err
		})
		g.Go(func() error {
			items, err := a.GW.Media.FetchAll(gctx)
			if err == nil {
				snap.Media = items
			}
			return err
		})

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return snap, nil
	})
}

func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadyz reporta el modo del gateway; en modo fixtures el API
// igual está listo (sirve el dataset embebido).
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	mode := "fixtures"
	if a.GW.Configured {
		mode = "configured"
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ready", "mode": mode})
}
