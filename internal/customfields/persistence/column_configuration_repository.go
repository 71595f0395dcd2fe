package persistence

import (
	"context"
	"errors"
	"fmt"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

func NewColumnConfigurationRepository(orm sql.ORM) (*SimpleColumnConfigurationRepository, error) {
	err := orm.AutoMigrate(&internal.ColumnConfiguration{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleColumnConfigurationRepository{
		orm: orm,
	}, nil
}

var _ usecases.ColumnConfigurationRepository = (*SimpleColumnConfigurationRepository)(nil)

type SimpleColumnConfigurationRepository struct {
	orm sql.ORM
}

func (r *SimpleColumnConfigurationRepository) Get(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	page domain.PageName,
) (domain.ColumnConfiguration, error) {
	var entity internal.ColumnConfiguration
	err := r.orm.
		WithContext(ctx).
		First(&entity, "namespace = ? AND model_name = ? AND page_name = ?", ns.String(), model.String(), page.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.ColumnConfiguration{}, usecases.ErrColumnConfigurationNotFound
	}
	if err != nil {
		return domain.ColumnConfiguration{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleColumnConfigurationRepository) Save(ctx context.Context, config domain.ColumnConfiguration) error {
	entity := internal.FromColumnConfiguration(config)

	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("saving column configuration in database: %w", err)
	}
	return nil
}

func (r *SimpleColumnConfigurationRepository) Delete(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	page domain.PageName,
) error {
	err := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ? AND page_name = ?", ns.String(), model.String(), page.String()).
		Delete(&internal.ColumnConfiguration{}).
		Error()
	if err != nil {
		return fmt.Errorf("database delete: %w", err)
	}
	return nil
}

func (r *SimpleColumnConfigurationRepository) FindByModel(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) ([]domain.ColumnConfiguration, error) {
	var entities []internal.ColumnConfiguration
	err := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ?", ns.String(), model.String()).
		Order("page_name").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.ColumnConfiguration, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}
