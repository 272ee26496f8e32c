package cleanupworker

import (
	"context"
	"time"

	reportstorage "career-tools-backend/lib/report-storage"
	baseworker "career-tools-backend/lib/utils/base-worker"
)

// Удаление сгенерированных отчётов старше ttl
func StartWorker(ctx context.Context, storage reportstorage.Provider, ttl, interval time.Duration) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("ReportCleanupWorker", 10*time.Second, interval),
		storage:  storage,
		ttl:      ttl,
	}
	go i.Run(ctx, i.deleteExpired)
}

type impl struct {
	baseworker.BaseImpl
	storage reportstorage.Provider
	ttl     time.Duration
}

func (i impl) deleteExpired(ctx context.Context) {
	logger := i.GetLogger()
	deleted, err := i.storage.DeleteExpired(ctx, time.Now().Add(-i.ttl))
	if err != nil {
		logger.WithError(err).Error("ошибка удаления устаревших отчётов")
	}
	if deleted > 0 {
		logger.WithField("deleted", deleted).Info("устаревшие отчёты удалены")
	}
}
