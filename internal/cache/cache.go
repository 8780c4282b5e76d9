// Package cache provee el cache de respuestas del API público de
// contenido, con backend en memoria (desarrollo) o Redis (producción).
package cache

import (
	"context"
	"time"
)

// Client define las operaciones de cache que usa el API.
type Client interface {
	// Get obtiene un valor. Retorna ErrNotFound si no existe o expiró.
	Get(ctx context.Context, key string) (string, error)

	// Set guarda un valor con TTL. Si ttl es 0, no expira.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete elimina una key (no es error si no existe).
	Delete(ctx context.Context, key string) error

	// Ping verifica la conexión.
	Ping(ctx context.Context) error

	// Close cierra la conexión.
	Close() error
}

// Config configuración para crear un cliente de cache.
type Config struct {
	Driver   string `yaml:"driver"` // "memory" | "redis"
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type errNotFound struct{}

func (errNotFound) Error() string { return "cache: key not found" }

// ErrNotFound se retorna cuando la key no existe.
var ErrNotFound = errNotFound{}

// IsNotFound verifica si el error es porque la key no existe.
func IsNotFound(err error) bool {
	_, ok := err.(errNotFound)
	return ok
}

// New crea un cliente según cfg.Driver. Un driver desconocido cae a
// memoria.
func New(cfg Config) (Client, error) {
	switch cfg.Driver {
	case "redis":
		return NewRedis(cfg)
	default:
		return NewMemory(cfg.Prefix), nil
	}
}
