package wsclient

import (
	"context"
	"encoding/json"
	"time"

	careerhandler "career-tools-backend/lib/career"
	connectionhub "career-tools-backend/lib/ws/hub/connection-hub"
	careermodels "career-tools-backend/models/api/career"
	wsmodels "career-tools-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const timeFormat = "02.01.2006 15:04:05"

func NewClient(clientID string, c *websocket.Conn) *WsClient {
	client := &WsClient{
		clientID: clientID,
	}
	if c != nil {
		client.conn = c
	}
	return client
}

type messageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

type WsClient struct {
	conn     messageReader
	clientID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает запросы карьерного плана и отвечает событиями по разделам.
// Запросы одного соединения обрабатываются последовательно, закрытие
// соединения отменяет выполняемый план.
func (c *WsClient) Dispatch(ctx context.Context) {
	if c.conn == nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	requests := make(chan []byte)
	go c.readLoop(ctx, cancel, requests)
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-requests:
			if !ok {
				return
			}
			c.handlePlanRequest(ctx, data)
		}
	}
}

func (c *WsClient) readLoop(ctx context.Context, cancel context.CancelFunc, requests chan<- []byte) {
	defer close(requests)
	defer cancel()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				log.WithError(err).Error("ошибка получения сообщения")
			}
			return
		}
		select {
		case requests <- data:
		case <-ctx.Done():
			return
		}
	}
}

func (c *WsClient) handlePlanRequest(ctx context.Context, data []byte) {
	logger := log.WithField("client_id", c.clientID)
	var req careermodels.PlanRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.WithError(err).Warn("некорректный запрос карьерного плана")
		c.send(wsmodels.CodeError, "не удалось получить данные из запроса", nil)
		return
	}
	resp, err := careerhandler.Instance.BuildPlan(ctx, req, func(section careermodels.Section) {
		c.send(wsmodels.CodeSection, section.Title, section)
	})
	if err != nil {
		if !careerhandler.IsRequestError(err) {
			logger.WithError(err).Error("ошибка формирования карьерного плана")
		}
		c.send(wsmodels.CodeError, err.Error(), nil)
		return
	}
	if resp.Failure != nil {
		c.send(wsmodels.CodeFailure, resp.Failure.Error(), resp)
		return
	}
	c.send(wsmodels.CodeDone, "карьерный план сформирован", resp)
}

func (c *WsClient) send(code, msg string, data interface{}) {
	connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
		ToClientID: c.clientID,
		Time:       time.Now().Format(timeFormat),
		Code:       code,
		Msg:        msg,
		Data:       data,
	})
}
