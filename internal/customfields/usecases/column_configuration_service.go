package usecases

//go:generate mockgen -source=./column_configuration_service.go -destination=../../../test/unit/doubles/customfields/usecases/column_configuration_service_mock.go -package=usecases -mock_names=ColumnConfigurationService=MockColumnConfigurationService

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type ColumnConfigurationService interface {
	GetColumns(ctx context.Context, ns shareddomain.Namespace, model, page string) (domain.ColumnConfiguration, error)
	SaveColumns(ctx context.Context, ns shareddomain.Namespace, model, page string, columns json.RawMessage) (domain.ColumnConfiguration, error)
}

func NewColumnConfigurationService(repository ColumnConfigurationRepository) *SimpleColumnConfigurationService {
	return &SimpleColumnConfigurationService{
		repository: repository,
	}
}

var _ ColumnConfigurationService = (*SimpleColumnConfigurationService)(nil)

type SimpleColumnConfigurationService struct {
	repository ColumnConfigurationRepository
}

func (s *SimpleColumnConfigurationService) GetColumns(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, page string,
) (domain.ColumnConfiguration, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return domain.ColumnConfiguration{}, validationError(err)
	}

	config, err := s.repository.Get(ctx, ns, modelName, domain.NormalizePage(page))
	if errors.Is(err, ErrColumnConfigurationNotFound) {
		return domain.ColumnConfiguration{}, ErrColumnConfigurationNotFound
	}
	if err != nil {
		slog.Error("getting column configuration", slog.String("error", err.Error()))
		return domain.ColumnConfiguration{}, storageError("getting column configuration", err)
	}
	return config, nil
}

func (s *SimpleColumnConfigurationService) SaveColumns(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, page string,
	columns json.RawMessage,
) (domain.ColumnConfiguration, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return domain.ColumnConfiguration{}, validationError(err)
	}

	config, err := domain.NewColumnConfiguration(ns, modelName, domain.NormalizePage(page), columns)
	if err != nil {
		return domain.ColumnConfiguration{}, validationError(err)
	}

	if err := s.repository.Save(ctx, config); err != nil {
		slog.Error("saving column configuration", slog.String("error", err.Error()))
		return domain.ColumnConfiguration{}, storageError("saving column configuration", err)
	}
	return config, nil
}
