package communication

import (
	"context"
	"fmt"

	"customfields-server/internal/customfields/communication/internal"
	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/pubsub"
)

const (
	FieldDefinitionsTopic pubsub.Topic = "custom_field_definitions"
)

func NewFieldEventPublisher(factory pubsub.PublisherFactory) (*FieldEventPublisher, error) {
	publisher, err := factory.New(FieldDefinitionsTopic, internal.FieldEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}
	return &FieldEventPublisher{
		publisher: publisher,
	}, nil
}

var _ usecases.FieldEventPublisher = (*FieldEventPublisher)(nil)

type FieldEventPublisher struct {
	publisher pubsub.Publisher
}

// Publish keys events by field id so that a field's history stays ordered
// within a partition.
func (p *FieldEventPublisher) Publish(ctx context.Context, event domain.FieldEvent) error {
	message := internal.FromFieldEvent(event)
	err := p.publisher.Publish(ctx, pubsub.Key(event.Field.ID), message)
	if err != nil {
		return fmt.Errorf("publishing field event: %w", err)
	}
	return nil
}
