// pkg/resolver/cached.go
package resolver

import (
	"context"

	"github.com/Clean1ines/hot100/pkg/storage"
)

// Lookup – любой способ разрешить ключ песни.
type Lookup interface {
	Resolve(ctx context.Context, key string) (string, error)
}

// Cached проверяет кэш перед поиском и сохраняет каждое новое разрешение сразу.
type Cached struct {
	Store    storage.Store
	Resolver Lookup
}

// Resolve возвращает идентификатор и признак попадания в кэш.
func (c *Cached) Resolve(ctx context.Context, key string) (string, bool, error) {
	if v, ok, err := c.Store.Get(ctx, key); err != nil {
		return "", false, err
	} else if ok {
		return v, true, nil
	}
	v, err := c.Resolver.Resolve(ctx, key)
	if err != nil {
		return "", false, err
	}
	if err := c.Store.Put(ctx, key, v); err != nil {
		return "", false, err
	}
	return v, false, nil
}
