package apiv1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	careerhandler "career-tools-backend/lib/career"
	"career-tools-backend/lib/llm/completion"
	reportstorage "career-tools-backend/lib/report-storage"
	"career-tools-backend/lib/smtp"
	apimodels "career-tools-backend/models/api"
	careermodels "career-tools-backend/models/api/career"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeCareer struct {
	planReq    careermodels.PlanRequest
	planResp   careermodels.PlanResponse
	planErr    error
	resumeText string
	exportFile careermodels.ExportFile
	exportErr  error
	emailErr   error
}

func (f *fakeCareer) BuildPlan(_ context.Context, req careermodels.PlanRequest, _ careerhandler.Observer) (careermodels.PlanResponse, error) {
	f.planReq = req
	return f.planResp, f.planErr
}

func (f *fakeCareer) ReviewResume(_ context.Context, resumeText string, _ careermodels.ResumeReviewRequest) (careermodels.ResumeReviewResponse, *completion.Failure, error) {
	f.resumeText = resumeText
	return careermodels.ResumeReviewResponse{Review: "looks good"}, nil, nil
}

func (f *fakeCareer) ExportReport(_ context.Context, _ string, _ careermodels.ExportFormat) (careermodels.ExportFile, error) {
	return f.exportFile, f.exportErr
}

func (f *fakeCareer) EmailReport(_ context.Context, _ string, _ careermodels.EmailRequest) error {
	return f.emailErr
}

func newCareerApp(fake *fakeCareer) *fiber.App {
	careerhandler.Instance = fake
	app := fiber.New()
	InitCareerApiRouters(app)
	return app
}

func multipartBody(t *testing.T, fields map[string]string, fileName, fileContent string) (*bytes.Buffer, string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.Nil(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("resume", fileName)
		require.Nil(t, err)
		_, err = part.Write([]byte(fileContent))
		require.Nil(t, err)
	}
	require.Nil(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeResponse(t *testing.T, body io.Reader) apimodels.Response {
	var resp apimodels.Response
	require.Nil(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestCareerPlanApi(t *testing.T) {
	t.Run(`json request`, func(t *testing.T) {
		fake := &fakeCareer{planResp: careermodels.PlanResponse{ReportID: "id", ExportURL: "/api/v1/career/plan/id/export?format=pdf"}}
		app := newCareerApp(fake)
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan",
			strings.NewReader(`{"skills":"python","interest":"data","education":"Bachelor's Degree","experience_years":2,"learning_level":8}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "success", decodeResponse(t, resp.Body).Status)
		require.Equal(t, "python", fake.planReq.Skills)
		require.Equal(t, 8, *fake.planReq.LearningLevel)
	})

	t.Run(`multipart request with resume file`, func(t *testing.T) {
		fake := &fakeCareer{}
		app := newCareerApp(fake)
		body, contentType := multipartBody(t, map[string]string{
			"skills":    "python, sql",
			"interest":  "data",
			"education": "PhD",
		}, "cv.txt", "Jane Doe\xff, analyst")
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "python, sql", fake.planReq.Skills)
		require.Equal(t, careermodels.EducationPhD, fake.planReq.Education)
		require.Equal(t, "Jane Doe, analyst", fake.planReq.ResumeText)
	})

	t.Run(`unsupported resume file`, func(t *testing.T) {
		app := newCareerApp(&fakeCareer{})
		body, contentType := multipartBody(t, map[string]string{"education": "PhD"}, "cv.docx", "x")
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`temperature outside the range is rejected before the llm`, func(t *testing.T) {
		for _, temperature := range []string{"NaN", "1.5", "-0.1"} {
			fake := &fakeCareer{}
			app := newCareerApp(fake)
			body, contentType := multipartBody(t, map[string]string{
				"education":   "PhD",
				"temperature": temperature,
			}, "", "")
			req := httptest.NewRequest(fiber.MethodPost, "/career/plan", body)
			req.Header.Set(fiber.HeaderContentType, contentType)
			resp, err := app.Test(req, -1)
			require.Nil(t, err)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, temperature)
			require.Empty(t, fake.planReq.Education, temperature)
		}
	})

	t.Run(`llm failure is a bad gateway with partial sections`, func(t *testing.T) {
		fake := &fakeCareer{planResp: careermodels.PlanResponse{
			ReportID: "id",
			Sections: []careermodels.Section{{Title: "Recommended Roles", Text: "1. A - x"}},
			Failure:  &completion.Failure{Kind: completion.UnexpectedStatus, StatusCode: 500, Detail: "LLM Error (500): boom"},
		}}
		app := newCareerApp(fake)
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan", strings.NewReader(`{"education":"PhD"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		decoded := decodeResponse(t, resp.Body)
		require.Equal(t, "fail", decoded.Status)
		require.Contains(t, decoded.Message, "500")
		data := decoded.Data.(map[string]interface{})
		require.Len(t, data["sections"], 1)
		require.Equal(t, "UnexpectedStatus", data["failure"].(map[string]interface{})["kind"])
	})

	t.Run(`request and internal errors`, func(t *testing.T) {
		fake := &fakeCareer{planErr: careerhandler.RequestError{Err: errors.New("bad education")}}
		app := newCareerApp(fake)
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan", strings.NewReader(`{"education":"PhD"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		fake.planErr = errors.New("disk full")
		req = httptest.NewRequest(fiber.MethodPost, "/career/plan", strings.NewReader(`{"education":"PhD"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err = app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestResumeReviewApi(t *testing.T) {
	t.Run(`resume file is required`, func(t *testing.T) {
		app := newCareerApp(&fakeCareer{})
		body, contentType := multipartBody(t, map[string]string{"model": "llama3-8b-8192"}, "", "")
		req := httptest.NewRequest(fiber.MethodPost, "/career/resume_review", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`nan temperature`, func(t *testing.T) {
		fake := &fakeCareer{}
		app := newCareerApp(fake)
		body, contentType := multipartBody(t, map[string]string{"temperature": "NaN"}, "cv.txt", "resume")
		req := httptest.NewRequest(fiber.MethodPost, "/career/resume_review", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "", fake.resumeText)
	})

	t.Run(`review`, func(t *testing.T) {
		fake := &fakeCareer{}
		app := newCareerApp(fake)
		body, contentType := multipartBody(t, nil, "cv.pdf", "%PDF resume text")
		req := httptest.NewRequest(fiber.MethodPost, "/career/resume_review", body)
		req.Header.Set(fiber.HeaderContentType, contentType)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "%PDF resume text", fake.resumeText)
	})
}

func TestExportApi(t *testing.T) {
	t.Run(`pdf download`, func(t *testing.T) {
		app := newCareerApp(&fakeCareer{exportFile: careermodels.ExportFile{
			FileName:    "career_plan.pdf",
			ContentType: "application/pdf",
			Body:        []byte("%PDF-1.3"),
		}})
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/career/plan/id/export?format=pdf", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		require.Equal(t, "attachment; filename=career_plan.pdf", resp.Header.Get(fiber.HeaderContentDisposition))
		data, err := io.ReadAll(resp.Body)
		require.Nil(t, err)
		require.Equal(t, []byte("%PDF-1.3"), data)
	})

	t.Run(`errors`, func(t *testing.T) {
		fake := &fakeCareer{exportErr: errors.Wrap(reportstorage.ErrNotFound, "report.json")}
		app := newCareerApp(fake)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/career/plan/id/export", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

		fake.exportErr = careerhandler.RequestError{Err: errors.New("bad format")}
		resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/career/plan/id/export?format=doc", nil), -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestEmailApi(t *testing.T) {
	t.Run(`smtp not configured`, func(t *testing.T) {
		app := newCareerApp(&fakeCareer{emailErr: smtp.ErrNotConfigured})
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan/id/email", strings.NewReader(`{"email":"jane@example.com"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run(`sent`, func(t *testing.T) {
		app := newCareerApp(&fakeCareer{})
		req := httptest.NewRequest(fiber.MethodPost, "/career/plan/id/email", strings.NewReader(`{"email":"jane@example.com"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
