package usecases

//go:generate mockgen -source=./value_service.go -destination=../../../test/unit/doubles/customfields/usecases/value_service_mock.go -package=usecases -mock_names=ValueService=MockValueService

import (
	"context"
	"log/slog"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type ValueService interface {
	GetValues(ctx context.Context, ns shareddomain.Namespace, model, record, page string) (domain.FieldValues, error)
	SaveValues(ctx context.Context, ns shareddomain.Namespace, model, record, page string, values domain.FieldValues) error
	DeletePageValues(ctx context.Context, ns shareddomain.Namespace, model, page, record string) (int64, error)
}

func NewValueService(repository FieldValueRepository) *SimpleValueService {
	return &SimpleValueService{
		repository: repository,
	}
}

var _ ValueService = (*SimpleValueService)(nil)

type SimpleValueService struct {
	repository FieldValueRepository
}

func (s *SimpleValueService) GetValues(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, record, page string,
) (domain.FieldValues, error) {
	modelName, recordID, err := parseRecordKey(model, record)
	if err != nil {
		return nil, err
	}

	values, err := s.repository.FindByRecordAndPage(ctx, ns, modelName, recordID, domain.NormalizePage(page))
	if err != nil {
		slog.Error("getting field values", slog.String("error", err.Error()))
		return nil, storageError("getting field values", err)
	}

	result := make(domain.FieldValues, len(values))
	for _, value := range values {
		result[value.FieldName.String()] = value.Value
	}
	return result, nil
}

func (s *SimpleValueService) SaveValues(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, record, page string,
	values domain.FieldValues,
) error {
	modelName, recordID, err := parseRecordKey(model, record)
	if err != nil {
		return err
	}

	for name := range values {
		if _, err := domain.ValidateFieldName(name); err != nil {
			return validationError(err)
		}
	}

	if len(values) == 0 {
		return nil
	}

	pageName := domain.NormalizePage(page)
	err = s.repository.Save(ctx, ns, modelName, recordID, pageName, values)
	if err != nil {
		slog.Error("saving field values",
			slog.String("namespace", ns.String()),
			slog.String("model", modelName.String()),
			slog.String("record", recordID.String()),
			slog.String("error", err.Error()))
		return storageError("saving field values", err)
	}

	slog.Debug("field values saved",
		slog.String("namespace", ns.String()),
		slog.String("model", modelName.String()),
		slog.String("record", recordID.String()),
		slog.String("page", pageName.String()),
		slog.Int("count", len(values)))
	return nil
}

func (s *SimpleValueService) DeletePageValues(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, page, record string,
) (int64, error) {
	modelName, recordID, err := parseRecordKey(model, record)
	if err != nil {
		return 0, err
	}

	removed, err := s.repository.DeletePage(ctx, ns, modelName, domain.NormalizePage(page), recordID)
	if err != nil {
		slog.Error("deleting page values", slog.String("error", err.Error()))
		return 0, storageError("deleting page values", err)
	}
	return removed, nil
}

func parseRecordKey(model, record string) (domain.ModelName, domain.RecordID, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return "", "", validationError(err)
	}
	recordID, err := domain.NewRecordID(record)
	if err != nil {
		return "", "", validationError(err)
	}
	return modelName, recordID, nil
}
