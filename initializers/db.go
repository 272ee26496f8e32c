package initializers

import (
	"career-tools-backend/config"
	"career-tools-backend/db"

	log "github.com/sirupsen/logrus"
)

// InitDBConnection подключает журнал запросов к ИИ, если он включён
func InitDBConnection() bool {
	if !*config.Conf.Database.Enabled {
		log.Info("Журнал запросов к ИИ выключен, БД не используется")
		return false
	}
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}
	return true
}
