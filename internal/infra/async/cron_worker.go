package async

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrEmptySchedule = errors.New("schedule is empty")

type Job func(ctx context.Context) error

func NewCronParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// NewCronWorker runs job on every activation of the cron schedule until the
// context passed to Run is cancelled or Shutdown is called.
func NewCronWorker(name, spec string, job Job) (*CronWorker, error) {
	if spec == "" {
		return nil, ErrEmptySchedule
	}

	schedule, err := NewCronParser().Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}

	return &CronWorker{
		name:     name,
		schedule: schedule,
		job:      job,
		stop:     make(chan struct{}),
		now:      time.Now,
	}, nil
}

var _ Worker = &CronWorker{}

type CronWorker struct {
	name     string
	schedule cron.Schedule
	job      Job
	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

func (w *CronWorker) Run(ctx context.Context, done func()) {
	slog.Info("cron worker started", slog.String("worker", w.name))
	defer done()

	for {
		next := w.schedule.Next(w.now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("cron worker cancelled", slog.String("worker", w.name))
			return
		case <-w.stop:
			timer.Stop()
			slog.Info("cron worker stopped", slog.String("worker", w.name))
			return
		case <-timer.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce executes the job immediately, logging any failure.
func (w *CronWorker) RunOnce(ctx context.Context) {
	slog.Debug("running scheduled job", slog.String("worker", w.name))
	if err := w.job(ctx); err != nil {
		slog.Error("scheduled job failed",
			slog.String("worker", w.name),
			slog.String("error", err.Error()))
	}
}

func (w *CronWorker) Next(from time.Time) time.Time {
	return w.schedule.Next(from)
}

func (w *CronWorker) Shutdown() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}
