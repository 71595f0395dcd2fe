package persistence

import (
	"context"
	"fmt"
	"sort"
	"time"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"
	"customfields-server/internal/infra/utils"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

func NewFieldValueRepository(orm sql.ORM) (*SimpleFieldValueRepository, error) {
	err := orm.AutoMigrate(&internal.FieldValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFieldValueRepository{
		orm: orm,
	}, nil
}

var _ usecases.FieldValueRepository = (*SimpleFieldValueRepository)(nil)

type SimpleFieldValueRepository struct {
	orm sql.ORM
}

func (r *SimpleFieldValueRepository) FindByRecordAndPage(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	record domain.RecordID,
	page domain.PageName,
) ([]domain.FieldValue, error) {
	var entities []internal.FieldValue
	err := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ? AND page_name = ? AND record_id = ?",
			ns.String(), model.String(), page.String(), record.String()).
		Order("field_name, updated_at, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return internal.FieldValuesToDomain(entities), nil
}

func (r *SimpleFieldValueRepository) FindByRecord(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	record domain.RecordID,
) ([]domain.FieldValue, error) {
	var entities []internal.FieldValue
	err := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ? AND record_id = ?", ns.String(), model.String(), record.String()).
		Order("field_name, updated_at, id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return internal.FieldValuesToDomain(entities), nil
}

func (r *SimpleFieldValueRepository) Save(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	record domain.RecordID,
	page domain.PageName,
	values domain.FieldValues,
) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, name := range names {
			if err := saveValue(tx, ns, model, record, page, name, values[name]); err != nil {
				return fmt.Errorf("saving value of %s: %w", name, err)
			}
		}
		return nil
	})
}

func saveValue(
	tx sql.ORM,
	ns shareddomain.Namespace,
	model domain.ModelName,
	record domain.RecordID,
	page domain.PageName,
	field string,
	value *string,
) error {
	err := tx.
		Where(_valueScope+" AND page_name <> ?", ns.String(), model.String(), record.String(), field, page.String()).
		Delete(&internal.FieldValue{}).
		Error()
	if err != nil {
		return fmt.Errorf("deleting values on other pages: %w", err)
	}

	var existing []internal.FieldValue
	err = tx.
		Where(_valueScope+" AND page_name = ?", ns.String(), model.String(), record.String(), field, page.String()).
		Order("updated_at DESC, id DESC").
		Find(&existing).
		Error()
	if err != nil {
		return fmt.Errorf("loading current value: %w", err)
	}

	if len(existing) == 0 {
		entity := internal.FromFieldValue(domain.NewFieldValue(ns, model, page, record, field, value))
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("inserting value: %w", err)
		}
		return nil
	}

	err = tx.
		Model(&internal.FieldValue{}).
		Where("id = ?", existing[0].ID).
		Updates(map[string]any{"field_value": value, "updated_at": time.Now().UTC()}).
		Error()
	if err != nil {
		return fmt.Errorf("updating value: %w", err)
	}

	if len(existing) > 1 {
		stale := make([]string, 0, len(existing)-1)
		for _, row := range existing[1:] {
			stale = append(stale, row.ID)
		}
		if err := tx.Where("id IN ?", stale).Delete(&internal.FieldValue{}).Error(); err != nil {
			return fmt.Errorf("deleting stale values: %w", err)
		}
	}
	return nil
}

func (r *SimpleFieldValueRepository) DeletePage(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	page domain.PageName,
	record domain.RecordID,
) (int64, error) {
	result := r.orm.
		WithContext(ctx).
		Where("namespace = ? AND model_name = ? AND page_name = ? AND record_id = ?",
			ns.String(), model.String(), page.String(), record.String()).
		Delete(&internal.FieldValue{})
	if err := result.Error(); err != nil {
		return 0, fmt.Errorf("database delete: %w", err)
	}
	return result.RowsAffected(), nil
}

// _unchangedDuplicate matches a losing row only while it still carries the
// timestamp it was read with and its winner still exists.
const _unchangedDuplicate = "namespace = ? AND id = ? AND updated_at = ? AND EXISTS (" +
	"SELECT 1 FROM custom_field_values winner WHERE winner.namespace = ? AND winner.id = ?)"

// DeleteDuplicates removes the losing rows of every set in one transaction.
// Rows rewritten since they were read are left in place.
func (r *SimpleFieldValueRepository) DeleteDuplicates(
	ctx context.Context,
	ns shareddomain.Namespace,
	sets []domain.DuplicateSet,
) (int64, error) {
	if len(sets) == 0 {
		return 0, nil
	}

	var removed int64
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		removed = 0
		for _, set := range sets {
			for _, loser := range set.Remove {
				result := tx.
					Where(_unchangedDuplicate,
						ns.String(), loser.ID.String(), loser.UpdatedAt.Time,
						ns.String(), set.Keep.ID.String()).
					Delete(&internal.FieldValue{})
				if err := result.Error(); err != nil {
					return fmt.Errorf("deleting duplicate %s: %w", loser.ID, err)
				}
				removed += result.RowsAffected()
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("database delete: %w", err)
	}
	return removed, nil
}

func (r *SimpleFieldValueRepository) FindRecordsWithDuplicates(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) ([]domain.RecordID, error) {
	var records []string
	err := r.orm.
		WithContext(ctx).
		Model(&internal.FieldValue{}).
		Where("namespace = ? AND model_name = ?", ns.String(), model.String()).
		Group("record_id, field_name").
		Having("COUNT(*) > 1").
		Pluck("record_id", &records).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	result := make([]domain.RecordID, 0, len(records))
	for _, record := range records {
		if _, ok := seen[record]; ok {
			continue
		}
		seen[record] = struct{}{}
		result = append(result, domain.RecordID(record))
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

// InsertValues bulk loads rows as given, without enforcing the single value
// per field. It backs imports and maintenance tooling.
func (r *SimpleFieldValueRepository) InsertValues(ctx context.Context, values []domain.FieldValue, batchSize int) error {
	entities := make([]internal.FieldValue, len(values))
	for i, value := range values {
		if value.ID == "" {
			value.ID = shareddomain.ID(utils.GenerateTimeOrderedUUID())
		}
		entities[i] = internal.FromFieldValue(value)
	}

	if len(entities) == 0 {
		return nil
	}

	err := r.orm.WithContext(ctx).CreateInBatches(&entities, batchSize).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}
	return nil
}
