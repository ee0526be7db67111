// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/Clean1ines/hot100/pkg/chart"
	"github.com/Clean1ines/hot100/pkg/logging"
	"github.com/Clean1ines/hot100/pkg/resolver"
	"github.com/Clean1ines/hot100/pkg/storage"
)

// PathEnvVar переопределяет путь к файлу конфигурации.
const PathEnvVar = "HOT100_CONFIG"

// DefaultPath – файл, который читается, если путь не задан явно.
const DefaultPath = "config.yaml"

// Config – настройки всего приложения. Приоритет: env > файл > значения по умолчанию.
type Config struct {
	Spotify  SpotifyConfig  `koanf:"spotify"`
	Chart    ChartConfig    `koanf:"chart"`
	Cache    CacheConfig    `koanf:"cache"`
	Resolver ResolverConfig `koanf:"resolver"`
	Logging  LoggingConfig  `koanf:"logging"`
	Output   OutputConfig   `koanf:"output"`
}

type SpotifyConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	TokenURL     string `koanf:"token_url" validate:"omitempty,url"`
	BaseURL      string `koanf:"base_url" validate:"omitempty,url"`
}

type ChartConfig struct {
	Source  string        `koanf:"source" validate:"required"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
	Retries int           `koanf:"retries" validate:"gte=0,lte=10"`
}

type CacheConfig struct {
	Backend      string `koanf:"backend" validate:"oneof=file redis"`
	Path         string `koanf:"path"`
	RedisAddress string `koanf:"redis_address"`
	RedisPrefix  string `koanf:"redis_prefix"`
}

type ResolverConfig struct {
	Interval time.Duration `koanf:"interval" validate:"gte=0"`
	Limit    int           `koanf:"limit" validate:"min=1,max=50"`
}

type LoggingConfig struct {
	Level   string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Format  string `koanf:"format" validate:"oneof=console json"`
	Project string `koanf:"project"`
	LogName string `koanf:"log_name"`
}

type OutputConfig struct {
	Sink           string `koanf:"sink" validate:"oneof=stdout file clipboard telegram pubsub"`
	Path           string `koanf:"path"`
	TelegramToken  string `koanf:"telegram_token"`
	TelegramChatID int64  `koanf:"telegram_chat_id"`
	PubSubProject  string `koanf:"pubsub_project"`
	PubSubTopic    string `koanf:"pubsub_topic"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Source:  chart.DefaultSource,
			Timeout: 60 * time.Second,
			Retries: 3,
		},
		Cache: CacheConfig{
			Backend:     "file",
			Path:        "urls.json",
			RedisPrefix: storage.DefaultRedisPrefix,
		},
		Resolver: ResolverConfig{
			Interval: resolver.DefaultInterval,
			Limit:    resolver.DefaultLimit,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Format:  "console",
			LogName: logging.DefaultLogName,
		},
		Output: OutputConfig{
			Sink: "clipboard",
		},
	}
}

// envMappings – переменные окружения, которые читает приложение.
var envMappings = map[string]string{
	"spotify_client_id":        "spotify.client_id",
	"spotify_client_secret":    "spotify.client_secret",
	"spotify_token_url":        "spotify.token_url",
	"spotify_base_url":         "spotify.base_url",
	"hot100_chart_source":      "chart.source",
	"hot100_chart_timeout":     "chart.timeout",
	"hot100_cache_backend":     "cache.backend",
	"hot100_cache_path":        "cache.path",
	"redis_address":            "cache.redis_address",
	"hot100_redis_prefix":      "cache.redis_prefix",
	"hot100_resolver_interval": "resolver.interval",
	"hot100_resolver_limit":    "resolver.limit",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
	"google_cloud_project":     "logging.project",
	"hot100_sink":              "output.sink",
	"hot100_output_path":       "output.path",
	"telegram_bot_token":       "output.telegram_token",
	"telegram_chat_id":         "output.telegram_chat_id",
	"pubsub_project":           "output.pubsub_project",
	"pubsub_topic":             "output.pubsub_topic",
}

// envValue пропускает незнакомые и пустые переменные.
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envMappings[strings.ToLower(key)], value
}

// Load собирает конфигурацию из значений по умолчанию, файла и окружения.
// Пустой path означает HOT100_CONFIG или config.yaml, если такой файл есть.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("значения по умолчанию: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = os.Getenv(PathEnvVar)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("файл конфигурации %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("файл конфигурации %s: %w", path, err)
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("переменные окружения: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации: %w", err)
	}
	if cfg.Output.PubSubProject == "" {
		cfg.Output.PubSubProject = cfg.Logging.Project
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate проверяет поля и их сочетания.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: правило %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("неверная конфигурация: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("неверная конфигурация: %w", err)
	}

	switch c.Cache.Backend {
	case "file":
		if c.Cache.Path == "" {
			return errors.New("неверная конфигурация: cache.path обязателен для файлового кэша")
		}
	case "redis":
		if c.Cache.RedisAddress == "" {
			return errors.New("неверная конфигурация: cache.redis_address обязателен для redis")
		}
	}

	switch c.Output.Sink {
	case "file":
		if c.Output.Path == "" {
			return errors.New("неверная конфигурация: output.path обязателен для вывода в файл")
		}
	case "telegram":
		if c.Output.TelegramToken == "" || c.Output.TelegramChatID == 0 {
			return errors.New("неверная конфигурация: для telegram нужны telegram_token и telegram_chat_id")
		}
	case "pubsub":
		if c.Output.PubSubProject == "" || c.Output.PubSubTopic == "" {
			return errors.New("неверная конфигурация: для pubsub нужны pubsub_project и pubsub_topic")
		}
	}
	return nil
}

// RequireSpotify проверяет наличие учетных данных Spotify; они нужны только для поиска треков.
func (c *Config) RequireSpotify() error {
	var missing []string
	if c.Spotify.ClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if c.Spotify.ClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("не заданы учетные данные Spotify: %s", strings.Join(missing, ", "))
	}
	return nil
}
