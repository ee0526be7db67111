// pkg/logging/logger.go
package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/logging"
	"github.com/rs/zerolog"
)

// DefaultLogName – имя лога в Cloud Logging, если не задано иное.
const DefaultLogName = "hot100"

// Config описывает параметры логгера.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // console или json
	Project string // GOOGLE_CLOUD_PROJECT; пустое значение отключает Cloud Logging
	LogName string
	Output  io.Writer
}

// Logger – структурированный логгер zerolog, при необходимости дублирующий записи в Cloud Logging.
type Logger struct {
	zerolog.Logger
	client *logging.Client
	cloud  *logging.Logger
}

// New создает логгер по конфигурации.
func New(ctx context.Context, cfg Config) (*Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return nil, fmt.Errorf("неизвестный уровень логирования %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	var w io.Writer = out
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	l := &Logger{}
	if cfg.Project != "" {
		client, err := logging.NewClient(ctx, cfg.Project)
		if err != nil {
			return nil, fmt.Errorf("ошибка инициализации Cloud Logging: %w", err)
		}
		name := cfg.LogName
		if name == "" {
			name = DefaultLogName
		}
		l.client = client
		l.cloud = client.Logger(name)
		w = zerolog.MultiLevelWriter(w, cloudWriter{sink: l.cloud})
	}
	l.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Nop возвращает логгер, который ничего не пишет.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close отправляет накопленные записи в Cloud Logging и закрывает клиента.
func (l *Logger) Close() error {
	if l.client == nil {
		return nil
	}
	if err := l.cloud.Flush(); err != nil {
		l.client.Close()
		return fmt.Errorf("ошибка отправки логов: %w", err)
	}
	return l.client.Close()
}

type entryLogger interface {
	Log(e logging.Entry)
}

// cloudWriter пересылает JSON-события zerolog в Cloud Logging.
type cloudWriter struct {
	sink entryLogger
}

func (c cloudWriter) Write(p []byte) (int, error) {
	return c.WriteLevel(zerolog.NoLevel, p)
}

func (c cloudWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	// zerolog переиспользует буфер, а Log отправляет запись асинхронно.
	payload := make(json.RawMessage, len(p))
	copy(payload, p)
	c.sink.Log(logging.Entry{Severity: severity(level), Payload: payload})
	return len(p), nil
}

func severity(level zerolog.Level) logging.Severity {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return logging.Debug
	case zerolog.InfoLevel:
		return logging.Info
	case zerolog.WarnLevel:
		return logging.Warning
	case zerolog.ErrorLevel:
		return logging.Error
	case zerolog.FatalLevel:
		return logging.Critical
	case zerolog.PanicLevel:
		return logging.Alert
	default:
		return logging.Default
	}
}
