// pkg/cli/check.go
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clean1ines/hot100/pkg/api/client"
	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/config"
	"github.com/Clean1ines/hot100/pkg/health"
	"github.com/Clean1ines/hot100/pkg/oauth"
)

func newCheckCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Проверить источник чартов, кэш и доступ к Spotify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(configFlag)
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			results := health.Run(cmd.Context(), timeout, checks(cfg)...)
			if failed := health.Report(cmd.OutOrStdout(), results); failed > 0 {
				return fmt.Errorf("не пройдено проверок: %d из %d", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "таймаут одной проверки")
	return cmd
}

func checks(cfg *config.Config) []health.Check {
	return []health.Check{
		{Name: "chart", Run: func(ctx context.Context) error {
			return chart.Probe(ctx, cfg.Chart.Source, client.New(1, client.WithRetries(0, 0)))
		}},
		{Name: "cache", Run: func(ctx context.Context) error {
			s, err := openStore(ctx, cfg.Cache)
			if err != nil {
				return err
			}
			return s.Close()
		}},
		{Name: "spotify", Run: func(ctx context.Context) error {
			if err := cfg.RequireSpotify(); err != nil {
				return err
			}
			return oauth.NewSpotifyCredentials(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret, cfg.Spotify.TokenURL).Verify(ctx)
		}},
	}
}
