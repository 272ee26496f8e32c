package ws

import (
	"context"

	wsclient "career-tools-backend/lib/ws/client"
	connectionhub "career-tools-backend/lib/ws/hub/connection-hub"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("clientID", uuid.NewString())
		return ctx.Next()
	})
	app.Get("/career/plan", websocket.New(careerPlanHandler))
}

// @Summary Карьерный план с потоковой выдачей
// @Tags Websocket Career
// @Description Клиент отправляет careermodels.PlanRequest в json, сервер отвечает событиями:
// @Description section на каждый готовый раздел, затем done или failure; error при некорректном запросе
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 426
// @router /ws/career/plan [get]
func careerPlanHandler(c *websocket.Conn) {
	clientID := c.Locals("clientID").(string)
	ctx, cancel := context.WithCancel(context.Background())
	client := wsclient.NewClient(clientID, c)
	connectionhub.Instance.AddClient(clientID, c)
	defer func() {
		cancel()
		connectionhub.Instance.DeleteClient(clientID)
	}()
	client.Dispatch(ctx)
}
