package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagMethod, TagPath, TagStatus, TagRequestID, "unknown"},
	}))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusBadGateway)
	})

	t.Run(`success is logged as info`, func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(fiber.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderXRequestID, "req-1")
		_, err := app.Test(req, -1)
		require.Nil(t, err)

		var entry map[string]interface{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "GET", entry[TagMethod])
		require.Equal(t, "/ok", entry[TagPath])
		require.Equal(t, float64(fiber.StatusOK), entry[TagStatus])
		require.Equal(t, "req-1", entry[TagRequestID])
		require.NotContains(t, entry, "unknown")
	})

	t.Run(`error status is logged as warning`, func(t *testing.T) {
		buf.Reset()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil), -1)
		require.Nil(t, err)

		var entry map[string]interface{}
		require.Nil(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.Equal(t, "запрос api завершился ошибкой", entry["msg"])
		require.NotContains(t, entry, TagRequestID)
	})
}
