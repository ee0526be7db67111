// pkg/resolver/resolver.go
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/Clean1ines/hot100/pkg/api"
	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/matching"
)

const (
	DefaultLimit    = 10
	DefaultInterval = 200 * time.Millisecond
)

// ErrNoCandidates – поиск не вернул ни одного трека. Вызывающий может пропустить песню.
var ErrNoCandidates = errors.New("поиск не вернул ни одного трека")

// SearchError – поиск недоступен или отклонил запрос (авторизация, сеть, квота).
// Такая ошибка прерывает запуск: подставлять худшего кандидата нельзя.
type SearchError struct {
	Key string
	Err error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("поиск %q: %v", e.Key, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Resolver сопоставляет ключ песни с идентификатором трека в каталоге.
type Resolver struct {
	searcher api.Searcher
	limit    int
	limiter  *rate.Limiter
	logger   *logging.Logger
}

// Option настраивает Resolver.
type Option func(*Resolver)

// WithLimit задает число кандидатов в выдаче поиска.
func WithLimit(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.limit = n
		}
	}
}

// WithInterval задает минимальный интервал между запросами к поиску; 0 снимает ограничение.
func WithInterval(d time.Duration) Option {
	return func(r *Resolver) {
		if d <= 0 {
			r.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		r.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithLogger задает логгер.
func WithLogger(l *logging.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// New создает Resolver поверх поисковика.
func New(searcher api.Searcher, opts ...Option) *Resolver {
	r := &Resolver{
		searcher: searcher,
		limit:    DefaultLimit,
		limiter:  rate.NewLimiter(rate.Every(DefaultInterval), 1),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve ищет ключ и возвращает URI самого похожего трека.
// Вызов блокируется, пока не истечет интервал с предыдущего поиска.
func (r *Resolver) Resolve(ctx context.Context, key string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("ожидание перед поиском %q: %w", key, err)
	}
	tracks, err := r.searcher.SearchTracks(ctx, key, r.limit)
	if err != nil {
		return "", &SearchError{Key: key, Err: err}
	}
	m, ok := matching.Best(key, api.Metadata(tracks))
	if !ok {
		return "", fmt.Errorf("%q: %w", key, ErrNoCandidates)
	}
	track := tracks[m.Index]
	r.logger.Debug().
		Str("key", key).
		Str("candidate", m.Compared).
		Float64("ratio", m.Ratio).
		Int("candidates", len(tracks)).
		Msg("выбран трек")
	if track.URI == "" {
		return "spotify:track:" + track.ID, nil
	}
	return track.URI, nil
}
