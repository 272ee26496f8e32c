package db

import (
	dbmodels "career-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.AiLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AiLog")
	}
	if err := DB.AutoMigrate(&dbmodels.CareerRun{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры CareerRun")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
