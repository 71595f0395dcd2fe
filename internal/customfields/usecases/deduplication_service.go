package usecases

//go:generate mockgen -source=./deduplication_service.go -destination=../../../test/unit/doubles/customfields/usecases/deduplication_service_mock.go -package=usecases -mock_names=DeduplicationService=MockDeduplicationService

import (
	"context"
	"log/slog"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/attribute"
)

type DeduplicationService interface {
	CleanupDuplicates(ctx context.Context, ns shareddomain.Namespace, model, record string) (int64, error)
	CleanupModelDuplicates(ctx context.Context, ns shareddomain.Namespace, model string) (int64, error)
}

func NewDeduplicationService(repository FieldValueRepository) *SimpleDeduplicationService {
	return &SimpleDeduplicationService{
		repository: repository,
		counters:   newCounters(_metricKeyValuesDeduplicated),
	}
}

var _ DeduplicationService = (*SimpleDeduplicationService)(nil)

type SimpleDeduplicationService struct {
	repository FieldValueRepository
	counters   counters
}

// CleanupDuplicates keeps the most recently written row of every field of the
// record and deletes the others by id, so the winner is never touched. A row
// rewritten after it was read survives the cleanup.
func (s *SimpleDeduplicationService) CleanupDuplicates(
	ctx context.Context,
	ns shareddomain.Namespace,
	model, record string,
) (int64, error) {
	modelName, recordID, err := parseRecordKey(model, record)
	if err != nil {
		return 0, err
	}
	return s.cleanupRecord(ctx, ns, modelName, recordID)
}

func (s *SimpleDeduplicationService) CleanupModelDuplicates(
	ctx context.Context,
	ns shareddomain.Namespace,
	model string,
) (int64, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return 0, validationError(err)
	}

	records, err := s.repository.FindRecordsWithDuplicates(ctx, ns, modelName)
	if err != nil {
		slog.Error("finding records with duplicates", slog.String("error", err.Error()))
		return 0, storageError("finding records with duplicates", err)
	}

	var total int64
	for _, record := range records {
		removed, err := s.cleanupRecord(ctx, ns, modelName, record)
		if err != nil {
			return total, err
		}
		total += removed
	}
	return total, nil
}

func (s *SimpleDeduplicationService) cleanupRecord(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	record domain.RecordID,
) (int64, error) {
	values, err := s.repository.FindByRecord(ctx, ns, model, record)
	if err != nil {
		slog.Error("loading record values", slog.String("error", err.Error()))
		return 0, storageError("loading record values", err)
	}

	sets := domain.GroupDuplicates(values)
	if len(sets) == 0 {
		return 0, nil
	}

	removed, err := s.repository.DeleteDuplicates(ctx, ns, sets)
	if err != nil {
		slog.Error("deleting duplicate values", slog.String("error", err.Error()))
		return 0, storageError("deleting duplicate values", err)
	}

	slog.Info("duplicate field values removed",
		slog.String("namespace", ns.String()),
		slog.String("model", model.String()),
		slog.String("record", record.String()),
		slog.Int64("removed", removed))
	s.counters.add(ctx, _metricKeyValuesDeduplicated, removed,
		attribute.String("namespace", ns.String()),
		attribute.String("model", model.String()))

	return removed, nil
}
