// pkg/pubsub/publisher.go
package pubsub

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/goccy/go-json"
	"google.golang.org/api/option"
)

// PlaylistMessage – тело сообщения с готовым списком.
type PlaylistMessage struct {
	GeneratedAt time.Time `json:"generated_at"`
	Mode        string    `json:"mode"`
	Items       []string  `json:"items"`
}

// Publisher публикует списки в топик Pub/Sub.
type Publisher struct {
	Client *pubsub.Client
	Topic  *pubsub.Topic
	Mode   string

	now   func() time.Time
	owned bool
}

// NewPublisher подключается к проекту и проверяет, что топик существует.
func NewPublisher(ctx context.Context, projectID, topicID string, opts ...option.ClientOption) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub: клиент: %w", err)
	}
	p, err := NewPublisherFromClient(ctx, client, topicID)
	if err != nil {
		client.Close()
		return nil, err
	}
	p.owned = true
	return p, nil
}

// NewPublisherFromClient использует готового клиента; Close его не закрывает.
func NewPublisherFromClient(ctx context.Context, client *pubsub.Client, topicID string) (*Publisher, error) {
	topic := client.Topic(topicID)
	ok, err := topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("pubsub: топик %s: %w", topicID, err)
	}
	if !ok {
		return nil, fmt.Errorf("pubsub: топик %s не существует", topicID)
	}
	return &Publisher{Client: client, Topic: topic, now: time.Now}, nil
}

// Deliver публикует список одним сообщением и ждет подтверждения.
func (p *Publisher) Deliver(ctx context.Context, lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	data, err := json.Marshal(PlaylistMessage{GeneratedAt: p.now().UTC(), Mode: p.Mode, Items: lines})
	if err != nil {
		return err
	}
	result := p.Topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"mode": p.Mode},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("pubsub: публикация: %w", err)
	}
	return nil
}

// Close отправляет накопленные сообщения и освобождает клиента.
func (p *Publisher) Close() error {
	p.Topic.Stop()
	if p.owned {
		return p.Client.Close()
	}
	return nil
}
