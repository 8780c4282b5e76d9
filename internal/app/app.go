// Package app arma las dependencias compartidas por los binarios: el
// gateway (configurado o fixtures), la máquina de autenticación, la
// biblioteca de media y el store de sesión.
package app

import (
	"context"
	"fmt"

	"github.com/eliteclan/backoffice/internal/auth"
	"github.com/eliteclan/backoffice/internal/config"
	"github.com/eliteclan/backoffice/internal/content"
	"github.com/eliteclan/backoffice/internal/email"
	"github.com/eliteclan/backoffice/internal/gateway"
	gwpg "github.com/eliteclan/backoffice/internal/gateway/pg"
	"github.com/eliteclan/backoffice/internal/gateway/storage"
	"github.com/eliteclan/backoffice/internal/media"
	"github.com/eliteclan/backoffice/internal/session"
)

// sessionSecret es la passphrase fija para derivar la clave del slot de
// sesión. Va compilada en el binario, igual que el resto de los
// parámetros de derivación: protege el archivo en reposo, no es un
// secreto de servidor.
const sessionSecret = "eliteclan-backoffice-session"

// App agrupa las dependencias construidas.
type App struct {
	Cfg     *config.Config
	GW      *gateway.Gateway
	Machine *auth.Machine
	Library *media.Library
	Store   *session.Store

	cleanup []func()
}

// New arma la aplicación completa a partir de la configuración.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Cfg: cfg}

	gw, cleanup, err := BuildGateway(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.GW = gw
	a.cleanup = append(a.cleanup, cleanup)

	sessPath := cfg.Session.Path
	if sessPath == "" {
		sessPath = session.DefaultPath()
	}
	a.Store = session.New(sessPath, sessionSecret)

	opts := []auth.Option{}
	if cfg.SMTP.Host != "" {
		opts = append(opts, auth.WithCodeSender(
			email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.Username, cfg.SMTP.Password)))
	} else if !gw.Configured {
		opts = append(opts, auth.WithCodeSender(email.LogSender{}))
	}
	if cfg.Auth.Fallback.Enabled {
		opts = append(opts, auth.WithFallbackCredentials(auth.FallbackCredentials{
			Email:      cfg.Auth.Fallback.Email,
			Password:   cfg.Auth.Fallback.Password,
			Role:       content.RoleAdmin,
			TOTPSecret: cfg.Auth.Fallback.TOTP,
		}))
	}
	a.Machine = auth.New(gw, a.Store, opts...)
	a.Library = media.NewLibrary(gw)

	return a, nil
}

// Close libera recursos en orden inverso de construcción.
func (a *App) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
}

// BuildGateway elige el modo una sola vez: DSN presente → Postgres con
// storage binario; ausente → fixtures en memoria.
func BuildGateway(ctx context.Context, cfg *config.Config) (*gateway.Gateway, func(), error) {
	if !cfg.Configured() {
		return gateway.NewFixture(), func() {}, nil
	}

	store, err := gwpg.New(ctx, cfg.Database.DSN, gwpg.Config{
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		ConnMaxLifetime: config.Duration(cfg.Database.ConnMaxLifetime),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("abriendo base: %w", err)
	}

	if cfg.Database.Migrate {
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("migrando: %w", err)
		}
	}

	st, err := storage.New(ctx, storage.Options{
		Kind:          storage.Kind(cfg.Storage.Kind),
		Dir:           cfg.Storage.Dir,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		Prefix:        cfg.Storage.Prefix,
	})
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("inicializando storage: %w", err)
	}

	authp := gwpg.NewAuthProvider(store, []byte(cfg.Auth.JWTSecret),
		config.Duration(cfg.Auth.AccessTTL), config.Duration(cfg.Auth.RefreshTTL))

	return store.Gateway(authp, st), store.Close, nil
}
