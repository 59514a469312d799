package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

// AuditRecorder turns admin actions and placed orders into audit log entries.
type AuditRecorder struct {
	logs repository.AuditLogs
	log  *slog.Logger
}

func NewAuditRecorder(logs repository.AuditLogs, log *slog.Logger) *AuditRecorder {
	return &AuditRecorder{logs: logs, log: log}
}

// Start subscribes to both topics; it returns once the subscriptions are live.
func (a *AuditRecorder) Start(ctx context.Context, sub Subscriber) error {
	if err := sub.Consume(ctx, TopicAdminAudit, a.onAdminAction); err != nil {
		return err
	}
	return sub.Consume(ctx, TopicOrderPlaced, a.onOrderPlaced)
}

func (a *AuditRecorder) onAdminAction(_ context.Context, payload []byte) error {
	var ev AdminAction
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("decode admin action: %w", err)
	}
	if ev.Details == nil {
		ev.Details = map[string]any{}
	}
	return a.logs.Create(models.AuditLog{
		EntityType: ev.EntityType,
		EntityID:   ev.EntityID,
		Action:     ev.Action,
		ActorID:    ev.ActorID,
		Details:    ev.Details,
	})
}

func (a *AuditRecorder) onOrderPlaced(_ context.Context, payload []byte) error {
	var ev OrderPlaced
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("decode order placed: %w", err)
	}
	a.log.Debug("order recorded", "order_id", ev.OrderID, "total", ev.Total)
	return a.logs.Create(models.AuditLog{
		EntityType: "order",
		EntityID:   ev.OrderID,
		Action:     "placed",
		ActorID:    ev.UserID,
		Details: map[string]any{
			"lines": ev.Lines,
			"total": ev.Total,
		},
	})
}
