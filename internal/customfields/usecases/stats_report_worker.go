package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"customfields-server/internal/infra/async"
	shareddomain "customfields-server/internal/shared_kernel/domain"
)

const _statsReportWorkerName = "partitioning-report"

type StatsReportSchedule string

// NewStatsReportWorker logs the partitioning recommendations of the given
// namespaces on every activation of schedule.
func NewStatsReportWorker(
	schedule StatsReportSchedule,
	namespaces []shareddomain.Namespace,
	advisor PartitioningAdvisor,
) (*StatsReportWorker, error) {
	w := &StatsReportWorker{
		namespaces: namespaces,
		advisor:    advisor,
	}

	worker, err := async.NewCronWorker(_statsReportWorkerName, string(schedule), w.Report)
	if err != nil {
		return nil, fmt.Errorf("creating stats report worker: %w", err)
	}
	w.CronWorker = worker
	return w, nil
}

var _ async.Worker = &StatsReportWorker{}

type StatsReportWorker struct {
	*async.CronWorker
	namespaces []shareddomain.Namespace
	advisor    PartitioningAdvisor
}

func (w *StatsReportWorker) Report(ctx context.Context) error {
	var errs []error
	for _, ns := range w.namespaces {
		stats, err := w.advisor.AllModelsStats(ctx, ns)
		if err != nil {
			errs = append(errs, fmt.Errorf("namespace %s: %w", ns, err))
			continue
		}

		for _, model := range stats {
			if !model.HasRecommendations() {
				slog.Debug("model within partitioning thresholds",
					slog.String("namespace", ns.String()),
					slog.String("model", model.ModelName.String()),
					slog.Int64("values", model.TotalValues))
				continue
			}
			for _, recommendation := range model.Recommendations {
				slog.Warn("partitioning recommendation",
					slog.String("namespace", ns.String()),
					slog.String("model", model.ModelName.String()),
					slog.String("kind", string(recommendation.Kind)),
					slog.String("message", recommendation.Message))
			}
		}
	}
	return errors.Join(errs...)
}
