package reportstorage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Provider хранит сгенерированные файлы отчёта до истечения срока жизни
type Provider interface {
	Save(ctx context.Context, reportID, fileName, contentType string, data []byte) error
	Get(ctx context.Context, reportID, fileName string) ([]byte, error)
	DeleteExpired(ctx context.Context, olderThan time.Time) (deleted int, err error)
}

var Instance Provider

var ErrNotFound = errors.New("отчёт не найден")

func checkReportID(reportID string) error {
	if _, err := uuid.Parse(reportID); err != nil {
		return errors.Wrapf(ErrNotFound, "некорректный идентификатор отчёта %q", reportID)
	}
	return nil
}
