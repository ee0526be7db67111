// pkg/oauth/spotify.go
package oauth

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

const spotifyTokenURL = "https://accounts.spotify.com/api/token"

// SpotifyCredentials выдает токены Spotify по схеме client credentials.
// Токен кэшируется и обновляется клиентом oauth2 автоматически.
type SpotifyCredentials struct {
	config clientcredentials.Config
}

// NewSpotifyCredentials создает учетные данные; пустой tokenURL означает боевой адрес Spotify.
func NewSpotifyCredentials(clientID, clientSecret, tokenURL string) *SpotifyCredentials {
	if tokenURL == "" {
		tokenURL = spotifyTokenURL
	}
	return &SpotifyCredentials{config: clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}}
}

// Verify запрашивает токен, чтобы неверные client_id/client_secret обнаружились до первого поиска.
func (c *SpotifyCredentials) Verify(ctx context.Context) error {
	if c.config.ClientID == "" || c.config.ClientSecret == "" {
		return fmt.Errorf("не заданы SPOTIFY_CLIENT_ID или SPOTIFY_CLIENT_SECRET")
	}
	if _, err := c.config.Token(ctx); err != nil {
		return fmt.Errorf("ошибка авторизации Spotify API: %w", err)
	}
	return nil
}

// Client возвращает HTTP-клиент, подписывающий запросы токеном Spotify.
func (c *SpotifyCredentials) Client(ctx context.Context) *http.Client {
	return c.config.Client(ctx)
}
