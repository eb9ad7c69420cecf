package app

import (
	"context"
	"time"

	"github.com/jasri-space/core/internal/pkg/cron"
	"go.uber.org/zap"
)

const activityRetention = 90 * 24 * time.Hour

func (a *App) registerCronJobs() {
	a.sched.Register(cron.Job{
		Name:        "prune_activity_logs",
		Description: "Delete activity log entries older than 90 days",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := a.activityLogger.Prune(time.Now().Add(-activityRetention))
			if err != nil {
				return err
			}
			if n > 0 {
				a.log.Info("pruned activity logs", zap.Int64("deleted", n))
			}
			return nil
		},
	})

	a.sched.Register(cron.Job{
		Name:        "clear_expired_otps",
		Description: "Clear expired password reset codes",
		Interval:    time.Hour,
		Fn: func(ctx context.Context) error {
			n, err := a.authSvc.ClearExpiredOTPs()
			if err != nil {
				return err
			}
			if n > 0 {
				a.log.Info("cleared expired reset codes", zap.Int64("cleared", n))
			}
			return nil
		},
	})
}
