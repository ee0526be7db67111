// pkg/playlist/builder.go
package playlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/Clean1ines/hot100/pkg/aggregate"
	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/ranges"
	"github.com/Clean1ines/hot100/pkg/resolver"
	"github.com/Clean1ines/hot100/pkg/selection"
)

// Mode определяет, что попадает в итоговый список.
type Mode string

const (
	ModeIdentifiers Mode = "identifiers" // URI треков Spotify
	ModeDisplay     Mode = "display"     // строки "{artist} - {title}"
)

// Request – параметры одного запуска.
type Request struct {
	Years         ranges.Range
	Peak          ranges.Range
	Artists       []string
	Top           int
	Chronological bool
	Mode          Mode
}

// Resolver разрешает ключ песни с учетом кэша.
type Resolver interface {
	Resolve(ctx context.Context, key string) (string, bool, error)
}

// Result – итог запуска.
type Result struct {
	Items      []string
	Unresolved []string
	CacheHits  int
	Searched   int
	Songs      int
	Ingest     chart.Stats
}

// Builder собирает список песен из чартов.
type Builder struct {
	Resolver Resolver
	Logger   *logging.Logger
}

// Build сворачивает чарты, отбирает песни и при необходимости разрешает их в URI.
// Песни без кандидатов пропускаются; любая другая ошибка прерывает запуск,
// и частичный результат не возвращается.
func (b *Builder) Build(ctx context.Context, raw []chart.RawChart, req Request) (*Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	snapshots, stats := chart.NewIngestor(req.Years, logger).Normalize(raw)
	agg := aggregate.New()
	agg.AddAll(snapshots)

	selected := selection.Select(agg.Records(), selection.Options{
		Peak:          req.Peak,
		Artists:       req.Artists,
		Top:           req.Top,
		Chronological: req.Chronological,
	})
	logger.Info().
		Int("weeks", stats.Snapshots).
		Int("skipped_entries", stats.SkippedEntries).
		Int("songs", agg.Len()).
		Int("selected", len(selected)).
		Msg("чарты обработаны")

	res := &Result{Songs: agg.Len(), Ingest: stats, Items: make([]string, 0, len(selected))}
	if req.Mode == ModeDisplay {
		for _, rec := range selected {
			res.Items = append(res.Items, rec.Display())
		}
		return res, nil
	}
	if b.Resolver == nil {
		return nil, fmt.Errorf("не задан резолвер для режима %q", req.Mode)
	}

	for i, rec := range selected {
		logger.Info().Msgf("Обработка песни %d из %d", i+1, len(selected))
		uri, hit, err := b.Resolver.Resolve(ctx, rec.Key)
		if errors.Is(err, resolver.ErrNoCandidates) {
			logger.Warn().Str("key", rec.Key).Msg("трек не найден, песня пропущена")
			res.Unresolved = append(res.Unresolved, rec.Key)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("песня %d из %d %q: %w", i+1, len(selected), rec.Key, err)
		}
		if hit {
			res.CacheHits++
		} else {
			res.Searched++
		}
		res.Items = append(res.Items, uri)
	}
	return res, nil
}

