// pkg/chart/feed.go
package chart

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/Clean1ines/hot100/pkg/api/client"
)

// DefaultSource – полный архив Billboard Hot 100 с 1958 года.
const DefaultSource = "https://raw.githubusercontent.com/mhollingshead/billboard-hot-100/main/all.json"

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Probe проверяет доступность источника, не загружая его целиком.
func Probe(ctx context.Context, source string, c *client.Client) error {
	if !isURL(source) {
		if _, err := os.Stat(source); err != nil {
			return fmt.Errorf("источник чартов: %w", err)
		}
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, source, nil)
	if err != nil {
		return err
	}
	resp, _, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("источник чартов: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("источник чартов: статус %d", resp.StatusCode)
	}
	return nil
}

// Fetch загружает фид по URL или из локального файла и разбирает его.
func Fetch(ctx context.Context, source string, c *client.Client) ([]RawChart, error) {
	var body []byte
	if isURL(source) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, data, err := c.Do(req)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки чартов: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("ошибка загрузки чартов: статус %d", resp.StatusCode)
		}
		body = data
	} else {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения чартов: %w", err)
		}
		body = data
	}

	var charts []RawChart
	if err := json.Unmarshal(body, &charts); err != nil {
		return nil, fmt.Errorf("ошибка разбора чартов: %w", err)
	}
	return charts, nil
}
