// pkg/telegram/bot.go
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MaxMessageLength – предел длины одного сообщения Telegram в символах.
const MaxMessageLength = 4096

// Bot отправляет готовый список в чат.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewBot создает бота и проверяет токен запросом getMe.
func NewBot(token string, chatID int64) (*Bot, error) {
	return NewBotWithEndpoint(token, tgbotapi.APIEndpoint, chatID, &http.Client{})
}

// NewBotWithEndpoint позволяет указать свой адрес Bot API, например для тестов.
func NewBotWithEndpoint(token, endpoint string, chatID int64, client *http.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Bot{api: api, chatID: chatID}, nil
}

// Deliver отправляет список одним или несколькими сообщениями.
func (b *Bot) Deliver(ctx context.Context, lines []string) error {
	for i, chunk := range Chunk(lines, MaxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(b.chatID, chunk)
		msg.DisableWebPagePreview = true
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("telegram: сообщение %d: %w", i+1, err)
		}
	}
	return nil
}

// Chunk разбивает строки на сообщения не длиннее limit символов.
// Пустые строки пропускаются; строка разрезается, только если она сама длиннее limit.
func Chunk(lines []string, limit int) []string {
	var (
		out  []string
		cur  strings.Builder
		size int
	)
	flush := func() {
		if size > 0 {
			out = append(out, cur.String())
			cur.Reset()
			size = 0
		}
	}
	for _, line := range lines {
		if line == "" {
			continue
		}
		for utf8.RuneCountInString(line) > limit {
			flush()
			head, tail := splitRunes(line, limit)
			out = append(out, head)
			line = tail
		}
		n := utf8.RuneCountInString(line)
		if size > 0 && size+1+n > limit {
			flush()
		}
		if size > 0 {
			cur.WriteByte('\n')
			size++
		}
		cur.WriteString(line)
		size += n
	}
	flush()
	return out
}

func splitRunes(s string, n int) (string, string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
