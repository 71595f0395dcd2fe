package persistence

import (
	"context"
	"fmt"
	"sort"

	"customfields-server/internal/customfields/domain"
	"customfields-server/internal/customfields/persistence/internal"
	"customfields-server/internal/customfields/usecases"
	"customfields-server/internal/infra/sql"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

func NewStatsRepository(orm sql.ORM) (*SimpleStatsRepository, error) {
	err := orm.AutoMigrate(&internal.FieldDefinition{}, &internal.FieldValue{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleStatsRepository{
		orm: orm,
	}, nil
}

var _ usecases.StatsRepository = (*SimpleStatsRepository)(nil)

type SimpleStatsRepository struct {
	orm sql.ORM
}

func (r *SimpleStatsRepository) ModelNames(ctx context.Context, ns shareddomain.Namespace) ([]domain.ModelName, error) {
	seen := make(map[string]struct{})

	for _, table := range []any{&internal.FieldDefinition{}, &internal.FieldValue{}} {
		var names []string
		err := r.orm.
			WithContext(ctx).
			Model(table).
			Where("namespace = ?", ns.String()).
			Distinct("model_name").
			Pluck("model_name", &names).
			Error()
		if err != nil {
			return nil, fmt.Errorf("database query: %w", err)
		}
		for _, name := range names {
			seen[name] = struct{}{}
		}
	}

	result := make([]domain.ModelName, 0, len(seen))
	for name := range seen {
		result = append(result, domain.ModelName(name))
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

func (r *SimpleStatsRepository) CountValuesByPage(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) (map[domain.PageName]int64, error) {
	return r.countByPage(ctx, &internal.FieldValue{}, ns, model)
}

func (r *SimpleStatsRepository) CountFieldsByPage(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
) (map[domain.PageName]int64, error) {
	return r.countByPage(ctx, &internal.FieldDefinition{}, ns, model)
}

func (r *SimpleStatsRepository) countByPage(
	ctx context.Context,
	table any,
	ns shareddomain.Namespace,
	model domain.ModelName,
) (map[domain.PageName]int64, error) {
	var rows []internal.PageCount
	err := r.orm.
		WithContext(ctx).
		Model(table).
		Select("page_name, COUNT(*) AS total").
		Where("namespace = ? AND model_name = ?", ns.String(), model.String()).
		Group("page_name").
		Scan(&rows).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make(map[domain.PageName]int64, len(rows))
	for _, row := range rows {
		result[domain.PageName(row.PageName)] = row.Total
	}
	return result, nil
}
