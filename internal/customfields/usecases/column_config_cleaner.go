package usecases

import (
	"context"
	"log/slog"

	"customfields-server/internal/customfields/domain"
	shareddomain "customfields-server/internal/shared_kernel/domain"

	"go.opentelemetry.io/otel/attribute"
)

func NewColumnConfigCleaner(repository ColumnConfigurationRepository) *ColumnConfigCleaner {
	return &ColumnConfigCleaner{
		repository: repository,
		counters:   newCounters(_metricKeyColumnCleanupFailures),
	}
}

var _ ColumnReferenceCleaner = (*ColumnConfigCleaner)(nil)

// ColumnConfigCleaner removes a deleted field from the column settings of
// every page of its model. Failures are logged and never returned.
type ColumnConfigCleaner struct {
	repository ColumnConfigurationRepository
	counters   counters
}

func (c *ColumnConfigCleaner) RemoveField(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	field shareddomain.Name,
) {
	configs, err := c.repository.FindByModel(ctx, ns, model)
	if err != nil {
		c.fail(ctx, ns, model, field, "listing column configurations", err)
		return
	}

	for _, config := range configs {
		updated, changed, err := config.RemoveField(field.String())
		if err != nil {
			c.fail(ctx, ns, model, field, "editing column configuration", err)
			continue
		}
		if !changed {
			continue
		}

		if updated.IsEmpty() {
			err = c.repository.Delete(ctx, ns, model, config.PageName)
		} else {
			err = c.repository.Save(ctx, updated)
		}
		if err != nil {
			c.fail(ctx, ns, model, field, "storing column configuration", err)
			continue
		}

		slog.Debug("column configuration cleaned",
			slog.String("namespace", ns.String()),
			slog.String("model", model.String()),
			slog.String("page", config.PageName.String()),
			slog.String("field", field.String()))
	}
}

func (c *ColumnConfigCleaner) fail(
	ctx context.Context,
	ns shareddomain.Namespace,
	model domain.ModelName,
	field shareddomain.Name,
	operation string,
	err error,
) {
	slog.Warn("column configuration cleanup failed",
		slog.String("operation", operation),
		slog.String("namespace", ns.String()),
		slog.String("model", model.String()),
		slog.String("field", field.String()),
		slog.String("error", err.Error()))
	c.counters.add(ctx, _metricKeyColumnCleanupFailures, 1,
		attribute.String("namespace", ns.String()),
		attribute.String("model", model.String()))
}
