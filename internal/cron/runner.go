package cronrunner

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner schedules the planner's background jobs. Jobs are registered by
// name so scheduler logs can be tied back to the work they triggered.
type Runner struct {
	cron    *cron.Cron
	logger  *zap.Logger
	baseCtx context.Context
}

func New(logger *zap.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	return &Runner{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		baseCtx: baseCtx,
	}
}

// Add registers a named job. Each invocation logs the job name and how long
// it ran, so slow recompute sweeps show up in the scheduler log.
func (r *Runner) Add(name, spec string, job func(context.Context)) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		ctx := context.Background()
		if r != nil && r.baseCtx != nil {
			ctx = r.baseCtx
		}
		start := time.Now()
		job(ctx)
		if r != nil && r.logger != nil {
			r.logger.Info("cron job finished",
				zap.String("job", name),
				zap.Duration("took", time.Since(start)))
		}
	})
	if err != nil {
		return id, err
	}
	if r.logger != nil {
		r.logger.Info("cron job registered",
			zap.String("job", name),
			zap.String("spec", spec))
	}
	return id, nil
}

func (r *Runner) Start() {
	if r.logger != nil {
		r.logger.Info("cron started")
	}
	r.cron.Start()
}

func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	if r.logger != nil {
		r.logger.Info("cron stopped")
	}
}
