package cache

import (
	"context"
	"time"
)

// Cache de cortesía para lecturas de calendario. Nunca es autoridad de
// cupo: el verificador siempre recuenta contra el almacén.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// NoopCache se usa cuando no hay Redis configurado.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}
