package usecases

//go:generate mockgen -source=publisher_port.go -destination=../../../test/unit/doubles/customfields/usecases/publisher_port_mock.go -package=usecases -mock_names=FieldEventPublisher=MockFieldEventPublisher

import (
	"context"

	"customfields-server/internal/customfields/domain"
)

type FieldEventPublisher interface {
	Publish(ctx context.Context, event domain.FieldEvent) error
}
