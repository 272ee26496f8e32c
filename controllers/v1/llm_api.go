package apiv1

import (
	"career-tools-backend/controllers"
	llmhandler "career-tools-backend/lib/llm"
	apimodels "career-tools-backend/models/api"
	llmmodels "career-tools-backend/models/api/llm"
	objectionmodels "career-tools-backend/models/api/objection"

	"github.com/gofiber/fiber/v2"
)

type llmApiController struct {
	controllers.BaseAPIController
}

func InitLLMApiRouters(app *fiber.App) {
	controller := llmApiController{}
	app.Route("llm", func(router fiber.Router) {
		router.Get("models", controller.models)
	})
}

// @Summary Список моделей
// @Tags LLM
// @Description Допустимые модели текущего провайдера, параметры по умолчанию и тоны ответа
// @Success 200 {object} apimodels.Response{data=llmmodels.ModelsResponse}
// @router /api/v1/llm/models [get]
func (c *llmApiController) models(ctx *fiber.Ctx) error {
	resp := llmmodels.ModelsResponse{
		Provider:           llmhandler.Instance.ProviderName(),
		Models:             llmhandler.Instance.Models(),
		DefaultModel:       llmhandler.Instance.DefaultModel(),
		DefaultTemperature: llmhandler.Instance.DefaultTemperature(),
		Tones:              objectionmodels.Tones,
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
