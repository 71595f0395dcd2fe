package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const _valueScope = "namespace = ? AND model_name = ? AND record_id = ? AND field_name = ?"

func NewFieldDefinitionRepository(orm sql.ORM) (*SimpleFieldDefinitionRepository, error) {
	err := orm.AutoMigrate(&internal.FieldDefinition{}, &internal.FieldValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldDefinitionRepository{
		orm: orm,
	}, nil
}

var _ usecases.FieldDefinitionRepository = (*SimpleFieldDefinitionRepository)(nil)

type SimpleFieldDefinitionRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldDefinitionRepository) Create(ctx context.Context, field domain.FieldDefinition) error {
	entity := internal.FromFieldDefinition(field)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrDuplicateField
	}
	if err != nil {
		return fmt.Errorf("creating field definition in database: %w", err)
	}

	return nil
}

func (r *SimpleFieldDefinitionRepository) GetByID(
	ctx context.Context,
	ns shareddomain.Namespace,
	id shareddomain.ID,
) (domain.FieldDefinition, error) {
	var entity internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		First(&entity, "namespace = ? AND id = ?", ns.String(), id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FieldDefinition{}, usecases.ErrFieldNotFound
	}
	if err != nil {
		return domain.FieldDefinition{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFieldDefinitionRepository) FindByModel(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) ([]domain.FieldDefinition, error) {
	var entities []internal.FieldDefinition
	err := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ?", ns.String(), model.String()).
		Order("page_name, display_order, field_name").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FieldDefinition, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}
	return result, nil
}

func (r *SimpleFieldDefinitionRepository) NextDisplayOrder(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	page domain.PageName,
) (int, error) {
	var orders []int
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldDefinition{}).
		Where("namespace = ? AND model_name = ? AND page_name = ?", ns.String(), model.String(), page.String()).
		Order("display_order DESC").
		Limit(1).
		Pluck("display_order", &orders).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database query: %w", err)
	}

	if len(orders) == 0 {
		return 0, nil
	}
	return orders[0] + 1, nil
}

func (r *SimpleFieldDefinitionRepository) Update(
	ctx context.Context,
	field domain.FieldDefinition,
	previousPage domain.PageName,
) (int64, error) {
	var migrated int64
	entity := internal.FromFieldDefinition(field)

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		result := tx.
			Model(&internal.FieldDefinition{}).
			Where("namespace = ? AND id = ?", entity.Namespace, entity.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(&entity)
		if err := result.Error(); err != nil {
			if errors.Is(err, sql.ErrDuplicatedKey) {
				return usecases.ErrDuplicateField
			}
			return fmt.Errorf("updating field definition: %w", err)
		}
		if result.RowsAffected() == 0 {
			return usecases.ErrFieldNotFound
		}

		if previousPage == field.PageName {
			return nil
		}

		var err error
		migrated, err = migratePage(tx, field, previousPage)
		return err
	})
	if err != nil {
		return 0, err
	}

	return migrated, nil
}

// migratePage moves every value of the field from one page to another. Rows
// are visited oldest first so that, when a record has several rows on the old
// page, the newest one ends up as the surviving value. Running it again after
// completion finds nothing to move.
func migratePage(tx sql.ORM, field domain.FieldDefinition, from domain.PageName) (int64, error) {
	var rows []internal.FieldValue
	err := tx.
		Where("namespace = ? AND model_name = ? AND page_name = ? AND field_name = ?",
			field.Namespace.String(), field.ModelName.String(), from.String(), field.FieldName.String()).
		Order("record_id, updated_at, id").
		Find(&rows).
		Error()
	if err != nil {
		return 0, fmt.Errorf("loading values to migrate: %w", err)
	}

	now := time.Now().UTC()
	for _, row := range rows {
		var targets []internal.FieldValue
		err := tx.
			Where(_valueScope+" AND page_name = ?",
				row.Namespace, row.ModelName, row.RecordID, row.FieldName, field.PageName.String()).
			Order("updated_at DESC, id DESC").
			Find(&targets).
			Error()
		if err != nil {
			return 0, fmt.Errorf("loading migration target: %w", err)
		}

		if len(targets) == 0 {
			err = tx.
				Model(&internal.FieldValue{}).
				Where("id = ?", row.ID).
				Updates(map[string]any{"page_name": field.PageName.String(), "updated_at": now}).
				Error()
			if err != nil {
				return 0, fmt.Errorf("re-keying value: %w", err)
			}
			continue
		}

		err = tx.
			Model(&internal.FieldValue{}).
			Where("id = ?", targets[0].ID).
			Updates(map[string]any{"field_value": row.FieldValue, "updated_at": now}).
			Error()
		if err != nil {
			return 0, fmt.Errorf("merging value: %w", err)
		}

		obsolete := []string{row.ID}
		for _, extra := range targets[1:] {
			obsolete = append(obsolete, extra.ID)
		}
		err = tx.Where("id IN ?", obsolete).Delete(&internal.FieldValue{}).Error()
		if err != nil {
			return 0, fmt.Errorf("removing migrated value: %w", err)
		}
	}

	slog.Debug("page migration completed",
		slog.String("field", field.FieldName.String()),
		slog.String("from", from.String()),
		slog.String("to", field.PageName.String()),
		slog.Int("rows", len(rows)))

	return int64(len(rows)), nil
}

func (r *SimpleFieldDefinitionRepository) Delete(ctx context.Context, field domain.FieldDefinition) (int64, error) {
	var removed int64

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		values := tx.
			Where("namespace = ? AND model_name = ? AND field_name = ?",
				field.Namespace.String(), field.ModelName.String(), field.FieldName.String()).
			Delete(&internal.FieldValue{})
		if err := values.Error(); err != nil {
			return fmt.Errorf("deleting field values: %w", err)
		}
		removed = values.RowsAffected()

		definition := tx.
			Where("namespace = ? AND id = ?", field.Namespace.String(), field.ID.String()).
			Delete(&internal.FieldDefinition{})
		if err := definition.Error(); err != nil {
			return fmt.Errorf("deleting field definition: %w", err)
		}
		if definition.RowsAffected() == 0 {
			return usecases.ErrFieldNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
