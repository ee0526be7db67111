// pkg/telegram/bot_test.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const token = "123:abc"

type fakeAPI struct {
	mu    sync.Mutex
	texts []string
	chats []string
	fail  bool
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/bot" + token + "/getMe":
		fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"hot100","username":"hot100_bot"}}`)
	case "/bot" + token + "/sendMessage":
		if f.fail {
			fmt.Fprint(w, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
			return
		}
		_ = r.ParseForm()
		f.mu.Lock()
		f.texts = append(f.texts, r.PostForm.Get("text"))
		f.chats = append(f.chats, r.PostForm.Get("chat_id"))
		f.mu.Unlock()
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`)
	default:
		http.NotFound(w, r)
	}
}

func newBot(t *testing.T, api *fakeAPI) *Bot {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	bot, err := NewBotWithEndpoint(token, srv.URL+"/bot%s/%s", 42, srv.Client())
	require.NoError(t, err)
	return bot
}

func TestDeliverSendsList(t *testing.T) {
	api := &fakeAPI{}
	bot := newBot(t, api)
	require.NoError(t, bot.Deliver(context.Background(), []string{"spotify:track:A", "spotify:track:B"}))
	assert.Equal(t, []string{"spotify:track:A\nspotify:track:B"}, api.texts)
	assert.Equal(t, []string{"42"}, api.chats)
}

func TestDeliverSplitsLongList(t *testing.T) {
	api := &fakeAPI{}
	bot := newBot(t, api)
	lines := make([]string, 300)
	for i := range lines {
		lines[i] = fmt.Sprintf("spotify:track:%022d", i)
	}
	require.NoError(t, bot.Deliver(context.Background(), lines))
	require.Greater(t, len(api.texts), 1)
	assert.Equal(t, strings.Join(lines, "\n"), strings.Join(api.texts, "\n"))
}

func TestDeliverAPIError(t *testing.T) {
	bot := newBot(t, &fakeAPI{fail: true})
	err := bot.Deliver(context.Background(), []string{"x"})
	assert.ErrorContains(t, err, "chat not found")
}

func TestNewBotRejectsToken(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := NewBotWithEndpoint(token, srv.URL+"/bot%s/%s", 42, srv.Client())
	assert.Error(t, err)
}

func TestChunk(t *testing.T) {
	assert.Nil(t, Chunk(nil, 10))
	assert.Equal(t, []string{"aaa\nbbb", "ccc"}, Chunk([]string{"aaa", "bbb", "ccc"}, 7))
	assert.Equal(t, []string{"aaaa", "aaaa", "aa\nb"}, Chunk([]string{"aaaaaaaaaa", "b"}, 4))
	assert.Equal(t, []string{"яяя\nжж"}, Chunk([]string{"яяя", "", "жж"}, 6))
	for _, c := range Chunk([]string{strings.Repeat("ы", 5000)}, MaxMessageLength) {
		assert.LessOrEqual(t, len([]rune(c)), MaxMessageLength)
	}
}
