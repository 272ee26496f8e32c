package careerhandler

import (
	"context"
	"errors"
	"fmt"
	"time"

	llmhandler "career-tools-backend/lib/llm"
	"career-tools-backend/lib/llm/completion"
	"career-tools-backend/lib/utils/helpers"
	careermodels "career-tools-backend/models/api/career"
	dbmodels "career-tools-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	resumeReviewTitle = "Resume Review"
	rolesTitle        = "Recommended Roles"
	noRolesTitle      = "No Roles Identified"
	noRolesText       = "The role recommendation did not contain numbered roles in the \"1. Role - Reason\" format. " +
		"Roadmap, salary projection and mock interview sections were not generated."
)

// Observer получает каждый раздел отчёта сразу после завершения этапа,
// в порядке следования разделов в отчёте.
type Observer func(section careermodels.Section)

type roleStage struct {
	name        string
	requestType dbmodels.AiReqestType
	title       func(role string) string
	prompt      func(role string, profile careermodels.UserProfile) string
}

var roleStages = []roleStage{
	{
		name:        "roadmap",
		requestType: dbmodels.AiRoleRoadmapType,
		title:       func(role string) string { return fmt.Sprintf("%s Roadmap", role) },
		prompt:      RoadmapPrompt,
	},
	{
		name:        "salary",
		requestType: dbmodels.AiSalaryProjectionType,
		title:       func(role string) string { return fmt.Sprintf("%s Salary Projection", role) },
		prompt:      SalaryPrompt,
	},
	{
		name:        "interview",
		requestType: dbmodels.AiMockInterviewType,
		title:       func(role string) string { return fmt.Sprintf("%s Mock Interview Q&A", role) },
		prompt:      InterviewPrompt,
	},
}

type RunInput struct {
	ReportID    string
	Profile     careermodels.UserProfile
	Model       string
	Temperature *float64
}

type Pipeline struct {
	llm         llmhandler.Provider
	concurrency int
}

func NewPipeline(llm llmhandler.Provider, concurrency int) Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return Pipeline{
		llm:         llm,
		concurrency: concurrency,
	}
}

// Run выполняет этапы: обзор резюме (если есть), роли, затем для каждой роли
// roadmap, salary, interview. Первая ошибка ИИ останавливает дальнейшие этапы,
// отчёт возвращается с Failure и уже готовыми разделами.
// error возвращается только при некорректных параметрах модели.
func (p Pipeline) Run(ctx context.Context, in RunInput, observe Observer) (careermodels.Report, error) {
	report := careermodels.Report{
		ID:        in.ReportID,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Roles:     []string{},
		Sections:  []careermodels.Section{},
	}
	// проверяем параметры модели до первого запроса
	if _, err := p.llm.BuildRequest(in.Model, in.Temperature, "", "check"); err != nil {
		return report, err
	}
	logger := log.WithField("report_id", in.ReportID)
	add := func(sections ...careermodels.Section) {
		report.Sections = append(report.Sections, sections...)
		if observe == nil {
			return
		}
		for _, section := range sections {
			observe(section)
		}
	}

	if in.Profile.ResumeText != "" {
		result := p.call(ctx, in, dbmodels.AiResumeReviewType, ResumeReviewPrompt(in.Profile.ResumeText))
		if !result.IsSuccess() {
			report.Failure = result.Failure
			return report, nil
		}
		add(careermodels.Section{Title: resumeReviewTitle, Text: result.Text})
	}

	result := p.call(ctx, in, dbmodels.AiRoleRecommendType, RolesPrompt(in.Profile))
	if !result.IsSuccess() {
		report.Failure = result.Failure
		return report, nil
	}
	add(careermodels.Section{Title: rolesTitle, Text: result.Text})

	report.Roles = ExtractRoles(result.Text)
	if len(report.Roles) == 0 {
		logger.Warn("из ответа ИИ не выделено ни одной роли")
		report.NoRoles = true
		add(careermodels.Section{Title: noRolesTitle, Text: noRolesText})
		return report, nil
	}

	for _, stage := range roleStages {
		sections, failure := p.runStage(ctx, in, report.Roles, stage)
		add(sections...)
		if failure != nil {
			logger.
				WithField("stage", stage.name).
				WithField("failure_kind", failure.Kind).
				Warn("этап карьерного плана завершился ошибкой, последующие этапы пропущены")
			report.Failure = failure
			return report, nil
		}
	}
	return report, nil
}

// runStage выполняет запросы по ролям параллельно (не более p.concurrency).
// Разделы возвращаются в порядке ролей; при ошибке - только непрерывный
// успешный префикс.
func (p Pipeline) runStage(ctx context.Context, in RunInput, roles []string, stage roleStage) ([]careermodels.Section, *completion.Failure) {
	results := make([]completion.Result, len(roles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for idx, role := range roles {
		g.Go(func() error {
			results[idx] = p.call(gCtx, in, stage.requestType, stage.prompt(role, in.Profile))
			if !results[idx].IsSuccess() {
				return results[idx].Failure
			}
			return nil
		})
	}
	err := g.Wait()

	sections := make([]careermodels.Section, 0, len(roles))
	for idx, role := range roles {
		if !results[idx].IsSuccess() {
			break
		}
		sections = append(sections, careermodels.Section{Title: stage.title(role), Text: results[idx].Text})
	}
	if err == nil {
		return sections, nil
	}
	var failure *completion.Failure
	if !errors.As(err, &failure) {
		failure = &completion.Failure{Kind: completion.NetworkError, Detail: err.Error()}
	}
	return sections, failure
}

func (p Pipeline) call(ctx context.Context, in RunInput, reqType dbmodels.AiReqestType, prompt string) completion.Result {
	if helpers.IsContextDone(ctx) {
		return completion.Fail(completion.NetworkError, 0, "запрос отменён")
	}
	req, err := p.llm.BuildRequest(in.Model, in.Temperature, "", prompt)
	if err != nil {
		// параметры уже проверены в Run
		return completion.Fail(completion.MalformedResponse, 0, err.Error())
	}
	return p.llm.Complete(ctx, llmhandler.Call{
		ReportID:    in.ReportID,
		RequestType: reqType,
		Request:     req,
	})
}
