package reportstorage

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type localImpl struct {
	dir string
}

// NewLocal хранит файлы в dir/<reportID>/<fileName>
func NewLocal(dir string) (Provider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "ошибка создания каталога отчётов %s", dir)
	}
	return &localImpl{dir: dir}, nil
}

func (i localImpl) Save(_ context.Context, reportID, fileName, _ string, data []byte) error {
	if err := checkReportID(reportID); err != nil {
		return err
	}
	reportDir := filepath.Join(i.dir, reportID)
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return errors.Wrap(err, "ошибка создания каталога отчёта")
	}
	if err := os.WriteFile(filepath.Join(reportDir, filepath.Base(fileName)), data, 0o644); err != nil {
		return errors.Wrap(err, "ошибка записи файла отчёта")
	}
	return nil
}

func (i localImpl) Get(_ context.Context, reportID, fileName string) ([]byte, error) {
	if err := checkReportID(reportID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(i.dir, reportID, filepath.Base(fileName)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "ошибка чтения файла отчёта")
	}
	return data, nil
}

func (i localImpl) DeleteExpired(ctx context.Context, olderThan time.Time) (deleted int, err error) {
	entries, err := os.ReadDir(i.dir)
	if err != nil {
		return 0, errors.Wrap(err, "ошибка чтения каталога отчётов")
	}
	for _, entry := range entries {
		if ctx.Err() != nil {
			return deleted, ctx.Err()
		}
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			log.WithError(err).WithField("report_id", entry.Name()).Warn("ошибка получения данных каталога отчёта")
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}
		if err = os.RemoveAll(filepath.Join(i.dir, entry.Name())); err != nil {
			log.WithError(err).WithField("report_id", entry.Name()).Warn("ошибка удаления отчёта")
			continue
		}
		deleted++
	}
	return deleted, nil
}
