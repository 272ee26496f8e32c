package careerhandler

import (
	"bytes"
	"context"
	"strings"
	"testing"

	xlsexport "career-tools-backend/lib/export/xls"
	"career-tools-backend/lib/llm/completion"
	reportstorage "career-tools-backend/lib/report-storage"
	"career-tools-backend/lib/smtp"
	careermodels "career-tools-backend/models/api/career"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to          string
	subject     string
	attachments []smtp.Attachment
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendEMail(to, subject, _ string, attachments ...smtp.Attachment) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, attachments: attachments})
	return nil
}

func newTestHandler(t *testing.T, answer func(prompt string) completion.Result) (Provider, *fakeMailer) {
	_, llm := newFakeLLM(answer)
	storage, err := reportstorage.NewLocal(t.TempDir())
	require.Nil(t, err)
	xlsexport.NewHandler()
	mailer := &fakeMailer{}
	return New(llm, storage, nil, mailer, xlsexport.Instance, 2), mailer
}

func planRequest() careermodels.PlanRequest {
	experience := 2
	learning := 8
	return careermodels.PlanRequest{
		Skills:          "python, ,sql",
		Interest:        "data",
		Education:       careermodels.EducationBachelor,
		ExperienceYears: &experience,
		LearningLevel:   &learning,
	}
}

func TestBuildPlan(t *testing.T) {
	ctx := context.Background()

	t.Run(`successful plan is exportable`, func(t *testing.T) {
		handler, mailer := newTestHandler(t, answerRoles("1. Data Analyst - entry fit"))
		resp, err := handler.BuildPlan(ctx, planRequest(), nil)
		require.Nil(t, err)
		require.Nil(t, resp.Failure)
		_, err = uuid.Parse(resp.ReportID)
		require.Nil(t, err)
		require.Equal(t, "/api/v1/career/plan/"+resp.ReportID+"/export?format=pdf", resp.ExportURL)
		require.Len(t, resp.Sections, 4)

		file, err := handler.ExportReport(ctx, resp.ReportID, careermodels.ExportPDF)
		require.Nil(t, err)
		require.Equal(t, "career_plan.pdf", file.FileName)
		require.Equal(t, "application/pdf", file.ContentType)
		require.True(t, bytes.HasPrefix(file.Body, []byte("%PDF")))

		file, err = handler.ExportReport(ctx, resp.ReportID, "")
		require.Nil(t, err)
		require.Equal(t, "career_plan.pdf", file.FileName)

		file, err = handler.ExportReport(ctx, resp.ReportID, careermodels.ExportXLSX)
		require.Nil(t, err)
		require.Equal(t, "career_plan.xlsx", file.FileName)
		require.NotEmpty(t, file.Body)

		err = handler.EmailReport(ctx, resp.ReportID, careermodels.EmailRequest{Email: "jane@example.com"})
		require.Nil(t, err)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "jane@example.com", mailer.sent[0].to)
		require.Equal(t, "career_plan.pdf", mailer.sent[0].attachments[0].FileName)
		require.True(t, bytes.HasPrefix(mailer.sent[0].attachments[0].Body, []byte("%PDF")))
	})

	t.Run(`failed plan produces no pdf`, func(t *testing.T) {
		handler, _ := newTestHandler(t, func(prompt string) completion.Result {
			if strings.Contains(prompt, rolesMarker) {
				return completion.Success("1. Data Analyst - entry fit")
			}
			return completion.Fail(completion.RateLimited, 429, "LLM Error (429): slow down")
		})
		resp, err := handler.BuildPlan(ctx, planRequest(), nil)
		require.Nil(t, err)
		require.NotNil(t, resp.Failure)
		require.Equal(t, completion.RateLimited, resp.Failure.Kind)
		require.Equal(t, "", resp.ExportURL)
		require.Len(t, resp.Sections, 1)

		_, err = handler.ExportReport(ctx, resp.ReportID, careermodels.ExportPDF)
		require.True(t, errors.Is(err, reportstorage.ErrNotFound))
	})

	t.Run(`zero roles is still exportable`, func(t *testing.T) {
		handler, _ := newTestHandler(t, answerRoles("no numbered list here"))
		resp, err := handler.BuildPlan(ctx, planRequest(), nil)
		require.Nil(t, err)
		require.True(t, resp.NoRoles)
		require.NotEqual(t, "", resp.ExportURL)
	})

	t.Run(`invalid request`, func(t *testing.T) {
		handler, _ := newTestHandler(t, answerRoles("1. A - x"))
		req := planRequest()
		req.Education = "Kindergarten"
		_, err := handler.BuildPlan(ctx, req, nil)
		require.True(t, IsRequestError(err))

		req = planRequest()
		req.Model = "unknown-model"
		_, err = handler.BuildPlan(ctx, req, nil)
		require.True(t, IsRequestError(err))

		req = planRequest()
		experience := 31
		req.ExperienceYears = &experience
		_, err = handler.BuildPlan(ctx, req, nil)
		require.True(t, IsRequestError(err))
	})
}

func TestExportReport(t *testing.T) {
	ctx := context.Background()
	handler, _ := newTestHandler(t, answerRoles("1. A - x"))

	t.Run(`unknown report`, func(t *testing.T) {
		_, err := handler.ExportReport(ctx, uuid.NewString(), careermodels.ExportPDF)
		require.True(t, errors.Is(err, reportstorage.ErrNotFound))

		_, err = handler.ExportReport(ctx, "../../etc", careermodels.ExportPDF)
		require.True(t, errors.Is(err, reportstorage.ErrNotFound))
	})

	t.Run(`unknown format`, func(t *testing.T) {
		_, err := handler.ExportReport(ctx, uuid.NewString(), "docx")
		require.True(t, IsRequestError(err))
	})
}

func TestEmailReport(t *testing.T) {
	ctx := context.Background()
	handler, mailer := newTestHandler(t, answerRoles("1. A - x"))
	resp, err := handler.BuildPlan(ctx, planRequest(), nil)
	require.Nil(t, err)

	t.Run(`invalid address`, func(t *testing.T) {
		err := handler.EmailReport(ctx, resp.ReportID, careermodels.EmailRequest{Email: "not an email"})
		require.True(t, IsRequestError(err))
	})

	t.Run(`smtp not configured`, func(t *testing.T) {
		mailer.err = smtp.ErrNotConfigured
		err := handler.EmailReport(ctx, resp.ReportID, careermodels.EmailRequest{Email: "jane@example.com"})
		require.True(t, errors.Is(err, smtp.ErrNotConfigured))
	})
}

func TestReviewResume(t *testing.T) {
	ctx := context.Background()

	t.Run(`review`, func(t *testing.T) {
		handler, _ := newTestHandler(t, func(prompt string) completion.Result {
			return completion.Success("strong SQL")
		})
		resp, failure, err := handler.ReviewResume(ctx, "Jane Doe", careermodels.ResumeReviewRequest{})
		require.Nil(t, err)
		require.Nil(t, failure)
		require.Equal(t, "strong SQL", resp.Review)
	})

	t.Run(`empty resume`, func(t *testing.T) {
		handler, _ := newTestHandler(t, answerRoles(""))
		_, _, err := handler.ReviewResume(ctx, "  \n", careermodels.ResumeReviewRequest{})
		require.True(t, IsRequestError(err))
	})

	t.Run(`failure`, func(t *testing.T) {
		handler, _ := newTestHandler(t, func(prompt string) completion.Result {
			return completion.Fail(completion.NetworkError, 0, "connection refused")
		})
		_, failure, err := handler.ReviewResume(ctx, "Jane Doe", careermodels.ResumeReviewRequest{})
		require.Nil(t, err)
		require.NotNil(t, failure)
		require.Equal(t, completion.NetworkError, failure.Kind)
	})
}
