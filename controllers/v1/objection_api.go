package apiv1

import (
	"career-tools-backend/controllers"
	objectionhandler "career-tools-backend/lib/objection"
	apimodels "career-tools-backend/models/api"
	objectionmodels "career-tools-backend/models/api/objection"

	"github.com/gofiber/fiber/v2"
)

type objectionApiController struct {
	controllers.BaseAPIController
}

func InitObjectionApiRouters(app *fiber.App) {
	controller := objectionApiController{}
	app.Route("objection", func(router fiber.Router) {
		router.Post("reply", controller.reply)
		router.Post("journey", controller.journey)
	})
}

// @Summary Ответ на возражение
// @Tags Objection
// @Description Сгенерировать ответ на возражение собеседника в выбранном тоне
// @Param	body	body		objectionmodels.ReplyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=objectionmodels.GenerationResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=completion.Failure}
// @router /api/v1/objection/reply [post]
func (c *objectionApiController) reply(ctx *fiber.Ctx) error {
	var payload objectionmodels.ReplyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, failure, err := objectionhandler.Instance.GenerateReply(ctx.UserContext(), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if failure != nil {
		return c.SendFailure(ctx, failure, nil)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Сценарий работы с собеседником
// @Tags Objection
// @Description Сгенерировать план ведения собеседника от текущего этапа до регистрации
// @Param	body	body		objectionmodels.JourneyRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=objectionmodels.GenerationResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 502 {object} apimodels.Response{data=completion.Failure}
// @router /api/v1/objection/journey [post]
func (c *objectionApiController) journey(ctx *fiber.Ctx) error {
	var payload objectionmodels.JourneyRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, failure, err := objectionhandler.Instance.GenerateJourney(ctx.UserContext(), payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if failure != nil {
		return c.SendFailure(ctx, failure, nil)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
