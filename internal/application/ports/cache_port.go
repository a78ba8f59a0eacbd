package ports

import (
	"context"
	"time"
)

// Claves de cache de reportes. Las rutas de escritura (venta, importación,
// CRUD de catálogo) deben invalidarlas tras confirmar la transacción.
const (
	CacheKeyDashboard = "reports:dashboard"
)

// Cache puerto clave-valor con TTL para reportes (Redis o Noop).
// Get devuelve false sin error cuando la clave no existe; los valores se
// serializan como JSON.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
