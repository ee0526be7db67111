// pkg/storage/store.go
package storage

import (
	"context"
	"fmt"
)

// Store – постоянное хранилище разрешений "ключ песни -> идентификатор в каталоге".
// Put считается выполненным только после записи на диск или в Redis.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Close() error
}

// CacheError – ошибка ввода-вывода кэша. Для запуска она фатальна:
// без записи в кэш каждый следующий запуск молча повторял бы все поиски.
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("кэш: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("кэш: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
