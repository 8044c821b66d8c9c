package service

import (
	"context"

	"recruai-web/pkg/events"
)

// EventPublisher exports domain events. *nats.Publisher implements it.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type noopPublisher struct{}

func NewNoopPublisher() EventPublisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, events.Event) error { return nil }
