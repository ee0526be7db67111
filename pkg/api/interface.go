// pkg/api/interface.go
package api

import (
	"context"

	"github.com/Clean1ines/hot100/pkg/matching"
)

// Searcher ищет треки в каталоге стримингового сервиса.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]Track, error)
}

// Track определяет общую структуру трека из выдачи поиска
type Track struct {
	ID      string
	URI     string // URI трека (например, spotify:track:...)
	Title   string
	Artists []string
}

// ToMetadata конвертирует трек в формат для сравнения
func (t Track) ToMetadata() matching.TrackMetadata {
	return matching.TrackMetadata{
		Title:   t.Title,
		Artists: t.Artists,
	}
}

// Metadata конвертирует выдачу поиска целиком.
func Metadata(tracks []Track) []matching.TrackMetadata {
	out := make([]matching.TrackMetadata, len(tracks))
	for i, t := range tracks {
		out[i] = t.ToMetadata()
	}
	return out
}
