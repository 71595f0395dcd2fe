package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/customfields/usecases/repository_port_mock.go -package=usecases -mock_names=FieldDefinitionRepository=MockFieldDefinitionRepository,FieldValueRepository=MockFieldValueRepository,StatsRepository=MockStatsRepository,ColumnConfigurationRepository=MockColumnConfigurationRepository

import (
	"context"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

type FieldDefinitionRepository interface {
	// Create returns ErrDuplicateField when (model, page, field) is taken.
	Create(ctx context.Context, field domain.FieldDefinition) error
	GetByID(ctx context.Context, ns shareddomain.Namespace, id shareddomain.ID) (domain.FieldDefinition, error)
	// FindByModel returns fields ordered by page, display order and name.
	FindByModel(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) ([]domain.FieldDefinition, error)
	NextDisplayOrder(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, page domain.PageName) (int, error)
	// Update persists the definition. When previousPage differs from the
	// definition's page, stored values are migrated in the same transaction
	// and the number of moved rows is returned.
	Update(ctx context.Context, field domain.FieldDefinition, previousPage domain.PageName) (int64, error)
	// Delete removes the definition and every value of the field across all
	// pages, returning the number of values removed.
	Delete(ctx context.Context, field domain.FieldDefinition) (int64, error)
}

type FieldValueRepository interface {
	FindByRecordAndPage(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, record domain.RecordID, page domain.PageName) ([]domain.FieldValue, error)
	FindByRecord(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, record domain.RecordID) ([]domain.FieldValue, error)
	// Save removes each field's rows on other pages and upserts it on page,
	// all in one transaction.
	Save(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, record domain.RecordID, page domain.PageName, values domain.FieldValues) error
	DeletePage(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, page domain.PageName, record domain.RecordID) (int64, error)
	DeleteDuplicates(ctx context.Context, ns shareddomain.Namespace, sets []domain.DuplicateSet) (int64, error)
	FindRecordsWithDuplicates(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) ([]domain.RecordID, error)
}

type StatsRepository interface {
	ModelNames(ctx context.Context, ns shareddomain.Namespace) ([]domain.ModelName, error)
	CountValuesByPage(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) (map[domain.PageName]int64, error)
	CountFieldsByPage(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) (map[domain.PageName]int64, error)
}

type ColumnConfigurationRepository interface {
	Get(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, page domain.PageName) (domain.ColumnConfiguration, error)
	Save(ctx context.Context, config domain.ColumnConfiguration) error
	Delete(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName, page domain.PageName) error
	FindByModel(ctx context.Context, ns shareddomain.Namespace, model domain.ModelName) ([]domain.ColumnConfiguration, error)
}
