package cache

import (
	"context"
	"time"

	"github.com/jhoicas/stock-api/internal/application/ports"
)

var _ ports.Cache = (*Noop)(nil)

// Noop cache nula para despliegues sin Redis: todo Get es miss y las
// escrituras se descartan.
type Noop struct{}

// NewNoop construye la cache nula.
func NewNoop() *Noop { return &Noop{} }

func (Noop) Get(_ context.Context, _ string, _ any) (bool, error) { return false, nil }

func (Noop) Set(_ context.Context, _ string, _ any, _ time.Duration) error { return nil }

func (Noop) Delete(_ context.Context, _ ...string) error { return nil }
