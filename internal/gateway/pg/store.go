// Package pg implementa el gateway sobre Postgres con pgx. Es el modo
// configurado: contenido en jsonb, cuentas con argon2id, refresh tokens
// hasheados y secretos TOTP cifrados en reposo.
package pg

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/gateway"
	"github.com/eliteclan/backoffice/internal/gateway/fixtures"
	"github.com/eliteclan/backoffice/internal/observability/logger"
)

// Store envuelve el pool de conexiones. Todos los adaptadores (auth,
// colecciones, media) comparten el mismo pool.
type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

// Config es el tuning opcional del pool.
type Config struct {
	MaxConns        int32
	MinConns        int32
	ConnMaxLifetime time.Duration
}

// New abre el pool contra dsn. El ping inicial es best-effort: si la
// base está caída al arranque la app igual levanta y los reads degradan
// a fixtures.
func New(ctx context.Context, dsn string, cfg Config) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		pcfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		pcfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.ConnMaxLifetime
		pcfg.MaxConnIdleTime = cfg.ConnMaxLifetime
	}
	if pcfg.MaxConns == 0 {
		pcfg.MaxConns = 8
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	log := logger.Named("pg")
	if err := pool.Ping(ctx); err != nil {
		log.Warn("ping inicial falló, la base puede estar caída", zap.Error(err))
	} else {
		log.Info("pool listo", zap.Int32("max_conns", pcfg.MaxConns))
	}

	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// Close cierra el pool (idempotente).
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Pool expone el pool interno para migraciones y métricas.
func (s *Store) Pool() *pgxpool.Pool {
	if s == nil {
		return nil
	}
	return s.pool
}

// Gateway arma el gateway en modo configurado. Cada colección cae a su
// dataset embebido cuando una lectura remota falla; las escrituras
// nunca degradan.
func (s *Store) Gateway(auth *AuthProvider, storage gateway.Storage) *gateway.Gateway {
	return &gateway.Gateway{
		Services:     &Collection[content.Service]{store: s, name: "services", noun: "servicio", fallback: fixtures.Services},
		Shows:        &Collection[content.Show]{store: s, name: "shows", noun: "show", fallback: fixtures.Shows},
		Discography:  &Collection[content.DiscographyItem]{store: s, name: "discography", noun: "lanzamiento", fallback: fixtures.Discography},
		Members:      &Collection[content.Member]{store: s, name: "members", noun: "integrante", fallback: fixtures.Members},
		Testimonials: &Collection[content.Testimonial]{store: s, name: "testimonials", noun: "testimonio", fallback: fixtures.Testimonials},
		Events:       &Collection[content.UpcomingEvent]{store: s, name: "events", noun: "evento", fallback: fixtures.Events},
		Auth:         auth,
		Media:        &MediaRegistry{store: s},
		Storage:      storage,
		Configured:   true,
	}
}
