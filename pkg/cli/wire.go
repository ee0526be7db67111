// pkg/cli/wire.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/Clean1ines/hot100/pkg/api"
	"github.com/Clean1ines/hot100/pkg/config"
	"github.com/Clean1ines/hot100/pkg/delivery"
	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/oauth"
	"github.com/Clean1ines/hot100/pkg/playlist"
	"github.com/Clean1ines/hot100/pkg/pubsub"
	"github.com/Clean1ines/hot100/pkg/resolver"
	"github.com/Clean1ines/hot100/pkg/storage"
	"github.com/Clean1ines/hot100/pkg/telegram"
)

func nop() error { return nil }

// newResolver проверяет доступ к Spotify и открывает кэш разрешений.
func newResolver(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*resolver.Cached, func() error, error) {
	if err := cfg.RequireSpotify(); err != nil {
		return nil, nil, err
	}
	creds := oauth.NewSpotifyCredentials(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL)
	if err := creds.Verify(ctx); err != nil {
		return nil, nil, err
	}

	store, err := openStore(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, err
	}

	var opts []spotify.ClientOption
	if base := cfg.Spotify.BaseURL; base != "" {
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		opts = append(opts, spotify.WithBaseURL(base))
	}
	searcher := api.NewSpotifySearcher(creds.Client(ctx), opts...)
	r := resolver.New(searcher,
		resolver.WithLimit(cfg.Resolver.Limit),
		resolver.WithInterval(cfg.Resolver.Interval),
		resolver.WithLogger(logger),
	)
	return &resolver.Cached{Store: store, Resolver: r}, store.Close, nil
}

func openStore(ctx context.Context, c config.CacheConfig) (storage.Store, error) {
	if c.Backend == "redis" {
		s, err := storage.NewRedis(ctx, c.RedisAddress, c.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := storage.OpenFile(c.Path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openSink(ctx context.Context, out config.OutputConfig, mode playlist.Mode, stdout io.Writer) (delivery.Sink, func() error, error) {
	switch out.Sink {
	case "stdout":
		return delivery.Writer{W: stdout}, nop, nil
	case "file":
		return delivery.File{Path: out.Path}, nop, nil
	case "clipboard":
		c, err := delivery.NewClipboard()
		if err != nil {
			return nil, nil, err
		}
		return c, nop, nil
	case "telegram":
		b, err := telegram.NewBot(out.TelegramToken, out.TelegramChatID)
		if err != nil {
			return nil, nil, err
		}
		return b, nop, nil
	case "pubsub":
		p, err := pubsub.NewPublisher(ctx, out.PubSubProject, out.PubSubTopic)
		if err != nil {
			return nil, nil, err
		}
		p.Mode = string(mode)
		return p, p.Close, nil
	}
	return nil, nil, fmt.Errorf("неизвестный способ вывода %q", out.Sink)
}
