package apiv1

import (
	"io"
	"path/filepath"
	"strings"

	"career-tools-backend/controllers"
	careerhandler "career-tools-backend/lib/career"
	reportstorage "career-tools-backend/lib/report-storage"
	"career-tools-backend/lib/smtp"
	"career-tools-backend/lib/utils/helpers"
	apimodels "career-tools-backend/models/api"
	careermodels "career-tools-backend/models/api/career"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const resumeFormField = "resume"

var resumeExtensions = []string{".txt", ".pdf"}

type careerApiController struct {
	controllers.BaseAPIController
}

func InitCareerApiRouters(app *fiber.App) {
	controller := careerApiController{}
	app.Route("career", func(router fiber.Router) {
		router.Post("plan", controller.plan)
		router.Post("resume_review", controller.resumeReview)
		router.Get("plan/:id/export", controller.export)
		router.Post("plan/:id/email", controller.email)
	})
}

// @Summary Карьерный план
// @Tags Career
// @Description Рекомендации ролей, план развития, прогноз зарплаты и вопросы собеседования.
// @Description Принимает json или multipart/form-data с необязательным файлом резюме (.txt, .pdf)
// @Accept json,mpfd
// @Param	body	body		careermodels.PlanRequest	true	"request body"
// @Param	resume	formData	file	false	"резюме"
// @Success 200 {object} apimodels.Response{data=careermodels.PlanResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=careermodels.PlanResponse}
// @router /api/v1/career/plan [post]
func (c *careerApiController) plan(ctx *fiber.Ctx) error {
	var payload careermodels.PlanRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeText, err := c.readResume(ctx, false)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if resumeText != "" {
		payload.ResumeText = resumeText
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := careerhandler.Instance.BuildPlan(ctx.UserContext(), payload, nil)
	if err != nil {
		if careerhandler.IsRequestError(err) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		c.GetLogger(ctx).WithError(err).Error("ошибка формирования карьерного плана")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if resp.Failure != nil {
		return c.SendFailure(ctx, resp.Failure, resp)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обзор резюме
// @Tags Career
// @Description Краткий обзор резюме: сильные стороны и что улучшить
// @Accept mpfd
// @Param	resume		formData	file	true	"резюме (.txt, .pdf)"
// @Param	model		formData	string	false	"модель"
// @Param	temperature	formData	number	false	"температура"
// @Success 200 {object} apimodels.Response{data=careermodels.ResumeReviewResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=completion.Failure}
// @router /api/v1/career/resume_review [post]
func (c *careerApiController) resumeReview(ctx *fiber.Ctx) error {
	var payload careermodels.ResumeReviewRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resumeText, err := c.readResume(ctx, true)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, failure, err := careerhandler.Instance.ReviewResume(ctx.UserContext(), resumeText, payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if failure != nil {
		return c.SendFailure(ctx, failure, nil)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка карьерного плана
// @Tags Career
// @Description Скачать отчёт в pdf (career_plan.pdf) или xlsx (career_plan.xlsx)
// @Param	id		path	string	true	"идентификатор отчёта"
// @Param	format	query	string	false	"pdf или xlsx, по умолчанию pdf"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/career/plan/{id}/export [get]
func (c *careerApiController) export(ctx *fiber.Ctx) error {
	reportID := ctx.Params("id")
	format := careermodels.ExportFormat(ctx.Query("format", string(careermodels.ExportPDF)))
	file, err := careerhandler.Instance.ExportReport(ctx.UserContext(), reportID, format)
	if err != nil {
		return c.sendReportError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, helpers.AttachmentDisposition(file.FileName))
	return ctx.Status(fiber.StatusOK).Send(file.Body)
}

// @Summary Отправить карьерный план на почту
// @Tags Career
// @Description Отправить pdf отчёт вложением на указанный адрес
// @Param	id		path	string						true	"идентификатор отчёта"
// @Param	body	body	careermodels.EmailRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/career/plan/{id}/email [post]
func (c *careerApiController) email(ctx *fiber.Ctx) error {
	var payload careermodels.EmailRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := careerhandler.Instance.EmailReport(ctx.UserContext(), ctx.Params("id"), payload)
	if err != nil {
		if errors.Is(err, smtp.ErrNotConfigured) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
		}
		return c.sendReportError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *careerApiController) sendReportError(ctx *fiber.Ctx, err error) error {
	if careerhandler.IsRequestError(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if errors.Is(err, reportstorage.ErrNotFound) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(reportstorage.ErrNotFound.Error()))
	}
	c.GetLogger(ctx).WithError(err).Error("ошибка выгрузки отчёта")
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}

// readResume читает файл резюме из multipart формы
func (c *careerApiController) readResume(ctx *fiber.Ctx, required bool) (string, error) {
	fileHeader, err := ctx.FormFile(resumeFormField)
	if err != nil || fileHeader == nil {
		if required {
			return "", errors.New("не передан файл резюме")
		}
		return "", nil
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !isResumeExtension(ext) {
		return "", errors.Errorf("неподдерживаемый формат резюме: %s", ext)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения файла резюме")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", errors.Wrap(err, "ошибка чтения файла резюме")
	}
	return helpers.DecodeUploadText(data), nil
}

func isResumeExtension(ext string) bool {
	for _, item := range resumeExtensions {
		if item == ext {
			return true
		}
	}
	return false
}
