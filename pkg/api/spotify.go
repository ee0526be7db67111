// pkg/api/spotify.go
package api

import (
	"context"
	"net/http"

	"github.com/zmb3/spotify/v2"
)

// SpotifySearcher ищет треки через Spotify Web API.
type SpotifySearcher struct {
	client *spotify.Client
}

// NewSpotifySearcher создает поисковик поверх авторизованного HTTP-клиента.
func NewSpotifySearcher(httpClient *http.Client, opts ...spotify.ClientOption) *SpotifySearcher {
	return &SpotifySearcher{client: spotify.New(httpClient, opts...)}
}

// SearchTracks возвращает до limit треков в порядке релевантности Spotify.
func (s *SpotifySearcher) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	res, err := s.client.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, err
	}
	if res.Tracks == nil {
		return nil, nil
	}
	tracks := make([]Track, 0, len(res.Tracks.Tracks))
	for _, ft := range res.Tracks.Tracks {
		artists := make([]string, 0, len(ft.Artists))
		for _, a := range ft.Artists {
			artists = append(artists, a.Name)
		}
		tracks = append(tracks, Track{
			ID:      ft.ID.String(),
			URI:     string(ft.URI),
			Title:   ft.Name,
			Artists: artists,
		})
	}
	return tracks, nil
}
