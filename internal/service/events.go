package service

import (
	"context"
	"github.com/google/uuid"
	"sneaker-shop/internal/entity"
	"time"
)

const (
	EventUserRegistered   = "user.registered"
	EventFavoriteAdded    = "favorite.added"
	EventFavoriteRemoved  = "favorite.removed"
	EventCartItemAdded    = "cart.item.added"
	EventCartItemRemoved  = "cart.item.removed"
	EventCartLineRemoved  = "cart.line.removed"
	EventCartLineQuantity = "cart.line.quantity"
)

// EventPublisher delivers shop events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.ShopEvent) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, entity.ShopEvent) error { return nil }

// NoopPublisher drops every event. Used when no broker is configured.
var NoopPublisher EventPublisher = noopPublisher{}

func newEvent(eventType string, userID, sneakerID, quantity int) entity.ShopEvent {
	return entity.ShopEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		SneakerID:  sneakerID,
		Quantity:   quantity,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// publish never fails the caller; the state change has already been committed.
func publish(ctx context.Context, p EventPublisher, event entity.ShopEvent) {
	if err := p.Publish(ctx, event); err != nil {
		logger.Error().Err(err).Msgf("Error publishing %s event for user %d", event.Type, event.UserID)
	}
}
