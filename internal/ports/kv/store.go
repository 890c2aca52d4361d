package kv

import (
	"context"
	"errors"
)

// ErrUnavailable lo devuelven los adapters cuando el backend no responde
// (conexión cerrada, archivo bloqueado, etc.).
var ErrUnavailable = errors.New("kv store unavailable")

// Store es la primitiva de persistencia: valores string completos por key.
// No hay transacciones ni escrituras parciales.
type Store interface {
	// Get devuelve ok=false si la key no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
