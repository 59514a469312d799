// Package events carries domain events between services over an in-process watermill
// pub/sub. Delivery is at-most-once: messages published before anyone subscribes are dropped.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/eagleeyes/storefront/internal/logger"
)

const (
	TopicOrderPlaced = "orders.placed"
	TopicAdminAudit  = "admin.audit"
)

// Publisher publishes an event, JSON encoded, to a topic.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
}

// Handler processes one decoded payload.
type Handler func(ctx context.Context, payload []byte) error

// Subscriber registers a handler for a topic. The subscription is live when Consume returns.
type Subscriber interface {
	Consume(ctx context.Context, topic string, handler Handler) error
}

type OrderPlaced struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
	Lines   int    `json:"lines"`
	Total   int64  `json:"total"`
}

type AdminAction struct {
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Action     string         `json:"action"`
	ActorID    string         `json:"actor_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

type Bus struct {
	ch  *gochannel.GoChannel
	log *slog.Logger
	wg  sync.WaitGroup
}

func NewBus(log *slog.Logger) *Bus {
	ch := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewSlogLogger(log),
	)
	return &Bus{ch: ch, log: log}
}

func (b *Bus) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("key", key)
	msg.SetContext(ctx)
	return b.ch.Publish(topic, msg)
}

func (b *Bus) Consume(ctx context.Context, topic string, handler Handler) error {
	msgs, err := b.ch.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("events.Consume %s: %w", topic, err)
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for msg := range msgs {
			if err := handler(msg.Context(), msg.Payload); err != nil {
				b.log.Error("Error handling message", "topic", topic, logger.Err(err))
			}
			msg.Ack()
		}
		b.log.Info("Consumer shutting down", "topic", topic)
	}()
	return nil
}

// Close stops every subscription and waits for in-flight handlers.
func (b *Bus) Close() error {
	err := b.ch.Close()
	b.wg.Wait()
	return err
}

type discard struct{}

func (discard) PublishEvent(context.Context, string, string, any) error { return nil }

// Discard is a Publisher that drops everything.
var Discard Publisher = discard{}
