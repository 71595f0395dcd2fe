package usecases

//go:generate mockgen -source=./partitioning_advisor.go -destination=../../../test/unit/doubles/customfields/usecases/partitioning_advisor_mock.go -package=usecases -mock_names=PartitioningAdvisor=MockPartitioningAdvisor

import (
	"context"
	"log/slog"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type PartitioningAdvisor interface {
	ModelStats(ctx context.Context, ns shareddomain.Namespace, model string) (domain.ModelStats, error)
	AllModelsStats(ctx context.Context, ns shareddomain.Namespace) ([]domain.ModelStats, error)
}

// NewPartitioningAdvisor uses thresholds as given; a non-positive threshold
// switches its recommendation off.
func NewPartitioningAdvisor(repository StatsRepository, thresholds domain.PartitioningThresholds) *SimplePartitioningAdvisor {
	return &SimplePartitioningAdvisor{
		repository: repository,
		thresholds: thresholds,
	}
}

var _ PartitioningAdvisor = (*SimplePartitioningAdvisor)(nil)

type SimplePartitioningAdvisor struct {
	repository StatsRepository
	thresholds domain.PartitioningThresholds
}

func (a *SimplePartitioningAdvisor) ModelStats(ctx context.Context, ns shareddomain.Namespace, model string) (domain.ModelStats, error) {
	modelName, err := domain.NewModelName(model)
	if err != nil {
		return domain.ModelStats{}, validationError(err)
	}
	return a.modelStats(ctx, ns, modelName)
}

func (a *SimplePartitioningAdvisor) AllModelsStats(ctx context.Context, ns shareddomain.Namespace) ([]domain.ModelStats, error) {
	models, err := a.repository.ModelNames(ctx, ns)
	if err != nil {
		slog.Error("listing models", slog.String("error", err.Error()))
		return nil, storageError("listing models", err)
	}

	result := make([]domain.ModelStats, 0, len(models))
	for _, model := range models {
		stats, err := a.modelStats(ctx, ns, model)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}
	return result, nil
}

func (a *SimplePartitioningAdvisor) modelStats(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) (domain.ModelStats, error) {
	valuesByPage, err := a.repository.CountValuesByPage(ctx, ns, model)
	if err != nil {
		slog.Error("counting field values", slog.String("error", err.Error()))
		return domain.ModelStats{}, storageError("counting field values", err)
	}

	fieldsByPage, err := a.repository.CountFieldsByPage(ctx, ns, model)
	if err != nil {
		slog.Error("counting field definitions", slog.String("error", err.Error()))
		return domain.ModelStats{}, storageError("counting field definitions", err)
	}

	stats := domain.ModelStats{
		ModelName:    model,
		ValuesByPage: valuesByPage,
		FieldsByPage: fieldsByPage,
	}
	for _, count := range valuesByPage {
		stats.TotalValues += count
	}
	for _, count := range fieldsByPage {
		stats.TotalFields += count
	}

	return stats.Evaluate(a.thresholds), nil
}
