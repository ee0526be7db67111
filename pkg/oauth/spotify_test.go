// pkg/oauth/spotify_test.go
package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, secret, ok := r.BasicAuth()
		if !ok {
			id, secret = r.FormValue("client_id"), r.FormValue("client_secret")
		}
		if id != "id" || secret != "secret" || r.FormValue("grant_type") != "client_credentials" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":3600}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestVerify(t *testing.T) {
	srv := tokenServer(t)
	assert.NoError(t, NewSpotifyCredentials("id", "secret", srv.URL).Verify(context.Background()))
	assert.ErrorContains(t, NewSpotifyCredentials("id", "wrong", srv.URL).Verify(context.Background()), "Spotify")
}

func TestVerifyMissingCredentials(t *testing.T) {
	err := NewSpotifyCredentials("", "", "").Verify(context.Background())
	assert.ErrorContains(t, err, "SPOTIFY_CLIENT_ID")
}

func TestClientSignsRequests(t *testing.T) {
	tokens := tokenServer(t)
	var auth string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
	}))
	defer api.Close()

	resp, err := NewSpotifyCredentials("id", "secret", tokens.URL).Client(context.Background()).Get(api.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "Bearer abc", auth)
}

func TestDefaultTokenURL(t *testing.T) {
	c := NewSpotifyCredentials("id", "secret", "")
	assert.Equal(t, spotifyTokenURL, c.config.TokenURL)
}
