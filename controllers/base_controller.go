package controllers

import (
	"career-tools-backend/lib/llm/completion"
	apimodels "career-tools-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// SendFailure отдаёт ошибку ИИ как 502, data содержит failure или частичный результат
func (c *BaseAPIController) SendFailure(ctx *fiber.Ctx, failure *completion.Failure, data interface{}) error {
	if data == nil {
		data = failure
	}
	return ctx.Status(fiber.StatusBadGateway).JSON(apimodels.NewFailure(failure.Error(), data))
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("path", ctx.Path()).
		WithField("request_id", ctx.Get(fiber.HeaderXRequestID))
}
