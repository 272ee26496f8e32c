package llmhandler

import (
	"context"
	"time"

	ailogstore "career-tools-backend/lib/llm/ai-log-store"
	"career-tools-backend/lib/llm/completion"
	"career-tools-backend/lib/metrics"
	dbmodels "career-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Complete(ctx context.Context, call Call) completion.Result
	BuildRequest(model string, temperature *float64, systemPrompt, userContent string) (completion.Request, error)
	Models() []completion.ModelOption
	ProviderName() string
	DefaultModel() string
	DefaultTemperature() float64
}

// Call - запрос к ИИ вместе с данными для журнала
type Call struct {
	ReportID    string
	RequestType dbmodels.AiReqestType
	Request     completion.Request
}

var Instance Provider

// NewHandler оборачивает клиента логированием, метриками и журналом запросов.
// logStore может быть nil, тогда журнал не ведётся.
func NewHandler(client completion.Provider, logStore ailogstore.Provider, defaultModel string, defaultTemperature float64) {
	Instance = New(client, logStore, defaultModel, defaultTemperature)
}

func New(client completion.Provider, logStore ailogstore.Provider, defaultModel string, defaultTemperature float64) Provider {
	return &impl{
		client:             client,
		logStore:           logStore,
		defaultModel:       defaultModel,
		defaultTemperature: defaultTemperature,
	}
}

type impl struct {
	client             completion.Provider
	logStore           ailogstore.Provider
	defaultModel       string
	defaultTemperature float64
}

func (i impl) Models() []completion.ModelOption {
	return completion.ProviderModels(i.client.Name())
}

func (i impl) ProviderName() string {
	return i.client.Name()
}

func (i impl) DefaultModel() string {
	return i.defaultModel
}

func (i impl) DefaultTemperature() float64 {
	return i.defaultTemperature
}

// BuildRequest подставляет модель и температуру по умолчанию и проверяет,
// что модель поддерживается текущим провайдером.
func (i impl) BuildRequest(model string, temperature *float64, systemPrompt, userContent string) (completion.Request, error) {
	modelID := i.defaultModel
	if model != "" {
		resolved, ok := completion.ResolveModel(model)
		if !ok {
			return completion.Request{}, errors.Errorf("модель %q не поддерживается", model)
		}
		modelID = resolved
	}
	if !completion.IsProviderModel(i.client.Name(), modelID) {
		return completion.Request{}, errors.Errorf("модель %q недоступна для провайдера %s", modelID, i.client.Name())
	}
	temp := i.defaultTemperature
	if temperature != nil {
		temp = *temperature
	}
	req := completion.NewRequest(modelID, systemPrompt, userContent, temp)
	if err := req.Validate(); err != nil {
		return completion.Request{}, err
	}
	return req, nil
}

func (i impl) Complete(ctx context.Context, call Call) completion.Result {
	logger := log.
		WithField("ai", i.client.Name()).
		WithField("model", call.Request.Model).
		WithField("request_type", call.RequestType)
	if call.ReportID != "" {
		logger = logger.WithField("report_id", call.ReportID)
	}

	now := time.Now()
	result := i.client.Complete(ctx, call.Request)
	duration := time.Since(now)

	outcome := metrics.OutcomeSuccess
	if !result.IsSuccess() {
		outcome = string(result.Failure.Kind)
	}
	metrics.LLMRequests.WithLabelValues(i.client.Name(), string(call.RequestType), outcome).Inc()
	metrics.LLMRequestDuration.WithLabelValues(i.client.Name(), string(call.RequestType)).Observe(duration.Seconds())

	logger = logger.WithField("answer_duration_sec", duration.Seconds())
	if result.IsSuccess() {
		logger.Info("Ответ AI получен")
	} else {
		logger.
			WithField("failure_kind", result.Failure.Kind).
			WithField("failure_status", result.Failure.StatusCode).
			WithField("failure_detail", result.Failure.Detail).
			Error("Ошибка запроса к AI")
	}
	i.saveLog(logger, call, result, duration)
	return result
}

func (i impl) saveLog(logger *log.Entry, call Call, result completion.Result, duration time.Duration) {
	if i.logStore == nil {
		return
	}
	rec := dbmodels.AiLog{
		SysPromt:   call.Request.SystemPrompt(),
		UserPromt:  call.Request.UserPrompt(),
		Answer:     result.Text,
		ReportID:   call.ReportID,
		ReqestType: call.RequestType,
		AiName:     i.client.Name(),
		Model:      call.Request.Model,
		DurationMs: duration.Milliseconds(),
	}
	if !result.IsSuccess() {
		rec.FailureKind = string(result.Failure.Kind)
		rec.Answer = result.Failure.Detail
	}
	if _, err := i.logStore.Save(rec); err != nil {
		logger.WithError(err).Warn("ошибка сохранения журнала запроса к AI")
	}
}
