package config

import (
	"career-tools-backend/lib/llm/completion"

	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr    string `default:"" env:"APP_HOST"`
		Port          int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB   int    `default:"20" env:"APP_BODY_LIMIT_MB"`
		ErrNotifyAddr string `default:"" env:"APP_ERR_NOTIFY_ADDR"`
		SwaggerFile   string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	LLM struct {
		Provider           string  `default:"groq" env:"LLM_PROVIDER"` // groq | yandexgpt
		BaseURL            string  `default:"https://api.groq.com/openai/v1/chat/completions" env:"LLM_BASE_URL"`
		APIKey             string  `default:"" env:"GROQ_API_KEY"`
		TimeoutSec         int     `default:"120" env:"LLM_TIMEOUT_SEC"`
		DefaultModel       string  `default:"" env:"LLM_DEFAULT_MODEL"` // по умолчанию первая модель провайдера
		DefaultTemperature float64 `default:"0.7" env:"LLM_DEFAULT_TEMPERATURE"`
	}
	YandexGPT struct {
		IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
		CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
	}
	Career struct {
		RoleConcurrency int `default:"2" env:"CAREER_ROLE_CONCURRENCY"`
	}
	Report struct {
		Storage            string `default:"local" env:"REPORT_STORAGE"` // local | s3
		TmpDir             string `default:"/tmp/career-plans" env:"REPORT_TMP_DIR"`
		TTLMinutes         int    `default:"60" env:"REPORT_TTL_MINUTES"`
		CleanupIntervalSec int    `default:"300" env:"REPORT_CLEANUP_INTERVAL_SEC"`
	}
	Database struct {
		Enabled        *bool  `default:"false" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"career-tools" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"career-plans" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	Metrics struct {
		Enabled *bool  `default:"true" env:"METRICS_ENABLED"`
		Path    string `default:"/metrics" env:"METRICS_PATH"`
	}
}

const (
	ProviderGroq      = completion.ProviderGroq
	ProviderYandexGPT = completion.ProviderYandexGPT

	ReportStorageLocal = "local"
	ReportStorageS3    = "s3"
)

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env не обязателен, переменные окружения могут быть заданы напрямую
	if err := godotenv.Load(); err != nil {
		log.Debug(".env файл не найден, используются переменные окружения")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	conf.ApplyDefaults()
	if err = conf.Validate(); err != nil {
		panic(err)
	}
	Conf = conf
}

// ApplyDefaults подставляет модель по умолчанию для выбранного провайдера
func (c *Configuration) ApplyDefaults() {
	if c.LLM.DefaultModel != "" {
		return
	}
	if models := completion.ProviderModels(c.LLM.Provider); len(models) > 0 {
		c.LLM.DefaultModel = models[0].ID
	}
}

// Validate проверяет, что для выбранного провайдера задан ключ доступа.
// Значений ключа по умолчанию нет.
func (c Configuration) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq:
		if c.LLM.APIKey == "" {
			return errors.New("не задан ключ доступа к LLM (GROQ_API_KEY)")
		}
		if c.LLM.BaseURL == "" {
			return errors.New("не задан адрес LLM (LLM_BASE_URL)")
		}
	case ProviderYandexGPT:
		if c.YandexGPT.IAMToken == "" || c.YandexGPT.CatalogID == "" {
			return errors.New("не заданы параметры доступа к YandexGPT (YANDEX_GPT_IAM_TOKEN, YANDEX_GPT_CATALOG_ID)")
		}
	default:
		return errors.Errorf("неизвестный провайдер LLM: %s", c.LLM.Provider)
	}
	if !completion.IsProviderModel(c.LLM.Provider, c.LLM.DefaultModel) {
		return errors.Errorf("модель по умолчанию %q недоступна для провайдера %s (LLM_DEFAULT_MODEL)", c.LLM.DefaultModel, c.LLM.Provider)
	}
	if err := completion.ValidateTemperature(c.LLM.DefaultTemperature); err != nil {
		return errors.Wrap(err, "LLM_DEFAULT_TEMPERATURE")
	}
	switch c.Report.Storage {
	case ReportStorageLocal, ReportStorageS3:
	default:
		return errors.Errorf("неизвестное хранилище отчётов: %s", c.Report.Storage)
	}
	if c.Career.RoleConcurrency < 1 {
		return errors.New("CAREER_ROLE_CONCURRENCY должен быть не меньше 1")
	}
	return nil
}
