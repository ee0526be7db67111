// pkg/cli/get.go
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Clean1ines/hot100/pkg/api/client"
	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/config"
	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/playlist"
	"github.com/Clean1ines/hot100/pkg/ranges"
)

type getOptions struct {
	configPath string
	years      string
	positions  string
	chrono     bool
	top        int
	artists    []string
	list       bool
	sink       string
	out        string
}

func newGetCmd() *cobra.Command {
	o := &getOptions{}
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Собрать список песен из чартов",
		Example: `  hot100 get -y 1980s -p 1 -c
  hot100 get -y 2010+ -t 50 -a "taylor swift,drake"
  hot100 get -y 1965 -l --sink stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.configPath, _ = cmd.Flags().GetString(configFlag)
			return runGet(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.years, "year", "y", "1958-2100", "годы: 2025, 2015-2019, 2010+, 2010-, 1960s")
	f.StringVarP(&o.positions, "pos", "p", "1-100", "пиковые позиции: 1-5, 100, 10+, 10-")
	f.BoolVarP(&o.chrono, "chrono", "c", false, "упорядочить по дате пика")
	f.IntVarP(&o.top, "top", "t", 0, "оставить первые N песен (0 – все)")
	f.StringSliceVarP(&o.artists, "artists", "a", nil, "подстроки имен исполнителей через запятую")
	f.BoolVarP(&o.list, "list", "l", false, "выводить \"исполнитель - название\" вместо URI Spotify")
	f.StringVar(&o.sink, "sink", "", "куда отправить список: stdout, file, clipboard, telegram, pubsub")
	f.StringVar(&o.out, "out", "", "файл для вывода (подразумевает --sink file)")
	return cmd
}

func (o *getOptions) request() (playlist.Request, error) {
	years, err := ranges.ParseYears(o.years)
	if err != nil {
		return playlist.Request{}, err
	}
	peak, err := ranges.ParsePositions(o.positions)
	if err != nil {
		return playlist.Request{}, err
	}
	if o.top < 0 {
		return playlist.Request{}, fmt.Errorf("--top не может быть отрицательным: %d", o.top)
	}
	mode := playlist.ModeIdentifiers
	if o.list {
		mode = playlist.ModeDisplay
	}
	return playlist.Request{
		Years:         years,
		Peak:          peak,
		Artists:       o.artists,
		Top:           o.top,
		Chronological: o.chrono,
		Mode:          mode,
	}, nil
}

func (o *getOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.out != "" {
		cfg.Output.Path = o.out
		if o.sink == "" {
			cfg.Output.Sink = "file"
		}
	}
	if o.sink != "" {
		cfg.Output.Sink = o.sink
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGet(ctx context.Context, o *getOptions, stdout, stderr io.Writer) error {
	req, err := o.request()
	if err != nil {
		return err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(ctx, logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Project: cfg.Logging.Project,
		LogName: cfg.Logging.LogName,
		Output:  stderr,
	})
	if err != nil {
		return err
	}
	defer logger.Close()

	builder := &playlist.Builder{Logger: logger}
	if req.Mode == playlist.ModeIdentifiers {
		r, closeStore, err := newResolver(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(); err != nil {
				logger.Error().Err(err).Msg("ошибка закрытия кэша")
			}
		}()
		builder.Resolver = r
	}

	sink, closeSink, err := openSink(ctx, cfg.Output, req.Mode, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSink(); err != nil {
			logger.Error().Err(err).Msg("ошибка закрытия вывода")
		}
	}()

	httpClient := client.New(1,
		client.WithTimeout(cfg.Chart.Timeout),
		client.WithRetries(cfg.Chart.Retries, time.Second),
	)
	raw, err := chart.Fetch(ctx, cfg.Chart.Source, httpClient)
	if err != nil {
		return err
	}

	res, err := builder.Build(ctx, raw, req)
	if err != nil {
		return err
	}
	if err := sink.Deliver(ctx, res.Items); err != nil {
		return err
	}

	logger.Info().
		Int("items", len(res.Items)).
		Int("unresolved", len(res.Unresolved)).
		Int("cache_hits", res.CacheHits).
		Int("searched", res.Searched).
		Str("sink", cfg.Output.Sink).
		Msg("список доставлен")
	fmt.Fprintf(stderr, "Готово: %d песен отправлено (%s).\n", len(res.Items), cfg.Output.Sink)
	return nil
}
