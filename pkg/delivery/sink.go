// pkg/delivery/sink.go
package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// Sink доставляет готовый список пользователю.
type Sink interface {
	Deliver(ctx context.Context, lines []string) error
}

// Text склеивает строки через перевод строки, без завершающего перевода.
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

// Writer пишет список в поток, по строке на элемент.
type Writer struct {
	W io.Writer
}

func (s Writer) Deliver(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(s.W, l); err != nil {
			return fmt.Errorf("вывод списка: %w", err)
		}
	}
	return nil
}

// File перезаписывает файл списком.
type File struct {
	Path string
}

func (s File) Deliver(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body := Text(lines)
	if len(lines) > 0 {
		body += "\n"
	}
	if err := os.WriteFile(s.Path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("запись списка в %s: %w", s.Path, err)
	}
	return nil
}

// Clipboard кладет список в системный буфер обмена.
type Clipboard struct {
	write func(string) error
}

// NewClipboard возвращает ошибку, если в системе нет утилиты для работы с буфером.
func NewClipboard() (*Clipboard, error) {
	if clipboard.Unsupported {
		return nil, errors.New("буфер обмена недоступен в этой системе")
	}
	return &Clipboard{write: clipboard.WriteAll}, nil
}

func (s *Clipboard) Deliver(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(Text(lines)); err != nil {
		return fmt.Errorf("буфер обмена: %w", err)
	}
	return nil
}
