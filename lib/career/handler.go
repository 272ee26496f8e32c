package careerhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	runstore "career-tools-backend/lib/career/run-store"
	pdfexport "career-tools-backend/lib/export/pdf"
	xlsexport "career-tools-backend/lib/export/xls"
	llmhandler "career-tools-backend/lib/llm"
	"career-tools-backend/lib/llm/completion"
	"career-tools-backend/lib/metrics"
	reportstorage "career-tools-backend/lib/report-storage"
	"career-tools-backend/lib/smtp"
	careermodels "career-tools-backend/models/api/career"
	dbmodels "career-tools-backend/models/db"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	reportFileName   = "report.json"
	reportJSONType   = "application/json"
	exportURLTpl     = "/api/v1/career/plan/%s/export?format=%s"
	emailSubject     = "Career Plan"
	emailMessageText = "Your career plan is attached."
)

type Provider interface {
	// BuildPlan возвращает err только при некорректном запросе (RequestError)
	// или внутренней ошибке; ошибки ИИ приходят в PlanResponse.Failure.
	BuildPlan(ctx context.Context, req careermodels.PlanRequest, observe Observer) (careermodels.PlanResponse, error)
	ReviewResume(ctx context.Context, resumeText string, req careermodels.ResumeReviewRequest) (resp careermodels.ResumeReviewResponse, failure *completion.Failure, err error)
	ExportReport(ctx context.Context, reportID string, format careermodels.ExportFormat) (careermodels.ExportFile, error)
	EmailReport(ctx context.Context, reportID string, req careermodels.EmailRequest) error
}

var Instance Provider

// RequestError - ошибка входных данных, отдаётся клиенту как 400
type RequestError struct {
	Err error
}

func (e RequestError) Error() string {
	return e.Err.Error()
}

func (e RequestError) Unwrap() error {
	return e.Err
}

func IsRequestError(err error) bool {
	var target RequestError
	return errors.As(err, &target)
}

// NewHandler собирает обработчик карьерного плана. runStore может быть nil,
// тогда метаданные запусков не сохраняются.
func NewHandler(llm llmhandler.Provider, storage reportstorage.Provider, runStore runstore.Provider, mailer smtp.Provider, xls xlsexport.Provider, concurrency int) {
	Instance = New(llm, storage, runStore, mailer, xls, concurrency)
}

func New(llm llmhandler.Provider, storage reportstorage.Provider, runStore runstore.Provider, mailer smtp.Provider, xls xlsexport.Provider, concurrency int) Provider {
	return impl{
		llm:      llm,
		pipeline: NewPipeline(llm, concurrency),
		storage:  storage,
		runStore: runStore,
		mailer:   mailer,
		xls:      xls,
	}
}

type impl struct {
	llm      llmhandler.Provider
	pipeline Pipeline
	storage  reportstorage.Provider
	runStore runstore.Provider
	mailer   smtp.Provider
	xls      xlsexport.Provider
}

func (i impl) BuildPlan(ctx context.Context, req careermodels.PlanRequest, observe Observer) (careermodels.PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return careermodels.PlanResponse{}, RequestError{Err: err}
	}
	reportID := uuid.NewString()
	logger := log.WithField("report_id", reportID)

	report, err := i.pipeline.Run(ctx, RunInput{
		ReportID:    reportID,
		Profile:     req.Profile(),
		Model:       req.Model,
		Temperature: req.Temperature,
	}, observe)
	if err != nil {
		return careermodels.PlanResponse{}, RequestError{Err: err}
	}
	resp := careermodels.PlanResponse{
		ReportID: report.ID,
		Roles:    report.Roles,
		NoRoles:  report.NoRoles,
		Sections: report.Sections,
		Failure:  report.Failure,
	}

	result := dbmodels.CareerRunCompleted
	if report.Failure != nil {
		result = dbmodels.CareerRunFailed
	}
	metrics.CareerPlans.WithLabelValues(string(result)).Inc()
	i.saveRun(logger, report, result)

	if report.Failure != nil {
		logger.WithField("failure_kind", report.Failure.Kind).Warn("карьерный план не сформирован")
		return resp, nil
	}
	if err = i.saveReport(ctx, report); err != nil {
		logger.WithError(err).Error("ошибка сохранения отчёта")
		return careermodels.PlanResponse{}, err
	}
	resp.ExportURL = fmt.Sprintf(exportURLTpl, report.ID, careermodels.ExportPDF)
	logger.
		WithField("roles", strings.Join(report.Roles, ", ")).
		WithField("sections", len(report.Sections)).
		Info("карьерный план сформирован")
	return resp, nil
}

func (i impl) saveReport(ctx context.Context, report careermodels.Report) error {
	pdfFile, err := pdfexport.GenerateReport(report.Document(), report.CreatedAt)
	if err != nil {
		return errors.Wrap(err, "ошибка формирования pdf")
	}
	if err = i.storage.Save(ctx, report.ID, pdfexport.FileName, pdfexport.ContentType, pdfFile); err != nil {
		return errors.Wrap(err, "ошибка сохранения pdf")
	}
	body, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации отчёта")
	}
	if err = i.storage.Save(ctx, report.ID, reportFileName, reportJSONType, body); err != nil {
		return errors.Wrap(err, "ошибка сохранения отчёта")
	}
	return nil
}

func (i impl) saveRun(logger *log.Entry, report careermodels.Report, result dbmodels.CareerRunResult) {
	if i.runStore == nil {
		return
	}
	rec := dbmodels.CareerRun{
		BaseModel: dbmodels.BaseModel{ID: report.ID},
		Roles:     report.Roles,
		NoRoles:   report.NoRoles,
		Result:    result,
		Sections:  len(report.Sections),
	}
	if report.Failure != nil {
		rec.FailureKind = string(report.Failure.Kind)
	}
	if _, err := i.runStore.Save(rec); err != nil {
		logger.WithError(err).Warn("ошибка сохранения запуска карьерного плана")
	}
}

func (i impl) ReviewResume(ctx context.Context, resumeText string, req careermodels.ResumeReviewRequest) (resp careermodels.ResumeReviewResponse, failure *completion.Failure, err error) {
	if strings.TrimSpace(resumeText) == "" {
		return resp, nil, RequestError{Err: errors.New("резюме не должно быть пустым")}
	}
	llmReq, err := i.llm.BuildRequest(req.Model, req.Temperature, "", ResumeReviewPrompt(resumeText))
	if err != nil {
		return resp, nil, RequestError{Err: err}
	}
	result := i.llm.Complete(ctx, llmhandler.Call{
		RequestType: dbmodels.AiResumeReviewType,
		Request:     llmReq,
	})
	if !result.IsSuccess() {
		return resp, result.Failure, nil
	}
	return careermodels.ResumeReviewResponse{Review: result.Text}, nil, nil
}

func (i impl) ExportReport(ctx context.Context, reportID string, format careermodels.ExportFormat) (careermodels.ExportFile, error) {
	if format == "" {
		format = careermodels.ExportPDF
	}
	if !format.IsValid() {
		return careermodels.ExportFile{}, RequestError{Err: errors.Errorf("неподдерживаемый формат выгрузки: %s", format)}
	}
	var file careermodels.ExportFile
	switch format {
	case careermodels.ExportPDF:
		data, err := i.storage.Get(ctx, reportID, pdfexport.FileName)
		if err != nil {
			return careermodels.ExportFile{}, err
		}
		file = careermodels.ExportFile{
			FileName:    pdfexport.FileName,
			ContentType: pdfexport.ContentType,
			Body:        data,
		}
	case careermodels.ExportXLSX:
		report, err := i.loadReport(ctx, reportID)
		if err != nil {
			return careermodels.ExportFile{}, err
		}
		buf, err := i.xls.ExportReport(report)
		if err != nil {
			return careermodels.ExportFile{}, errors.Wrap(err, "ошибка формирования xlsx")
		}
		file = careermodels.ExportFile{
			FileName:    xlsexport.FileName,
			ContentType: xlsexport.ContentType,
			Body:        buf.Bytes(),
		}
	}
	metrics.ReportExports.WithLabelValues(string(format)).Inc()
	return file, nil
}

func (i impl) loadReport(ctx context.Context, reportID string) (careermodels.Report, error) {
	data, err := i.storage.Get(ctx, reportID, reportFileName)
	if err != nil {
		return careermodels.Report{}, err
	}
	var report careermodels.Report
	if err = json.Unmarshal(data, &report); err != nil {
		return careermodels.Report{}, errors.Wrap(err, "ошибка чтения отчёта")
	}
	return report, nil
}

func (i impl) EmailReport(ctx context.Context, reportID string, req careermodels.EmailRequest) error {
	if err := req.Validate(); err != nil {
		return RequestError{Err: err}
	}
	data, err := i.storage.Get(ctx, reportID, pdfexport.FileName)
	if err != nil {
		return err
	}
	err = i.mailer.SendEMail(req.Email, emailSubject, emailMessageText, smtp.Attachment{
		FileName: pdfexport.FileName,
		Body:     data,
	})
	if err != nil {
		return err
	}
	log.WithField("report_id", reportID).Info("карьерный план отправлен на почту")
	return nil
}
