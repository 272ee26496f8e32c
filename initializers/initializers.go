package initializers

import (
	"context"
	"time"

	"career-tools-backend/config"
	"career-tools-backend/db"
	"career-tools-backend/fiberlog"
	careerhandler "career-tools-backend/lib/career"
	runstore "career-tools-backend/lib/career/run-store"
	xlsexport "career-tools-backend/lib/export/xls"
	llmhandler "career-tools-backend/lib/llm"
	ailogstore "career-tools-backend/lib/llm/ai-log-store"
	"career-tools-backend/lib/llm/completion"
	groqclient "career-tools-backend/lib/llm/groq-client"
	yagptclient "career-tools-backend/lib/llm/yagpt-client"
	objectionhandler "career-tools-backend/lib/objection"
	reportstorage "career-tools-backend/lib/report-storage"
	cleanupworker "career-tools-backend/lib/report-storage/cleanup-worker"
	"career-tools-backend/lib/smtp"
	initchecker "career-tools-backend/lib/utils/init-checker"
	connectionhub "career-tools-backend/lib/ws/hub/connection-hub"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	dbEnabled := InitDBConnection()
	InitSmtp()
	connectionhub.Init()
	reportstorage.Instance = InitReportStorage(ctx)
	xlsexport.NewHandler()

	var logStore ailogstore.Provider
	var runStore runstore.Provider
	if dbEnabled {
		logStore = ailogstore.NewInstance(db.DB)
		runStore = runstore.NewInstance(db.DB)
	}
	llmhandler.NewHandler(initCompletionClient(), logStore, config.Conf.LLM.DefaultModel, config.Conf.LLM.DefaultTemperature)
	objectionhandler.NewHandler(llmhandler.Instance)
	careerhandler.NewHandler(llmhandler.Instance, reportstorage.Instance, runStore, smtp.Instance, xlsexport.Instance,
		config.Conf.Career.RoleConcurrency)

	initchecker.CheckInit(
		"llmhandler", llmhandler.Instance,
		"objectionhandler", objectionhandler.Instance,
		"careerhandler", careerhandler.Instance,
		"reportstorage", reportstorage.Instance,
		"smtp", smtp.Instance,
		"connectionhub", connectionhub.Instance,
	)
	go initWorkers(ctx)
}

func initCompletionClient() completion.Provider {
	logger := log.WithField("provider", config.Conf.LLM.Provider)
	if config.Conf.LLM.Provider == config.ProviderYandexGPT {
		logger.Info("Используется YandexGPT")
		return yagptclient.NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID)
	}
	logger.WithField("url", config.Conf.LLM.BaseURL).Info("Используется OpenAI-совместимый API")
	return groqclient.NewClient(config.Conf.LLM.BaseURL, config.Conf.LLM.APIKey,
		time.Duration(config.Conf.LLM.TimeoutSec)*time.Second)
}

func initWorkers(ctx context.Context) {
	// Задача удаления устаревших отчётов
	cleanupworker.StartWorker(ctx, reportstorage.Instance,
		time.Duration(config.Conf.Report.TTLMinutes)*time.Minute,
		time.Duration(config.Conf.Report.CleanupIntervalSec)*time.Second)
}
