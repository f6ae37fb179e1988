package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestID())

		var seen string
		app.Get("/", func(c *fiber.Ctx) error {
			seen, _ = c.Locals(RequestIDLocalKey).(string)
			return c.SendStatus(http.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		header := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, header)
		assert.Equal(t, header, seen)
		_, err = uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("preserves an incoming id", func(t *testing.T) {
		app := fiber.New()
		app.Use(RequestID())
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "upstream-id-123")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-id-123", resp.Header.Get(RequestIDHeader))
	})
}

func TestLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/clients", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set(RequestIDHeader, "req-42")

	_, err := app.Test(req)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, http.MethodGet, line["method"])
	assert.Equal(t, "/clients", line["path"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
	assert.Contains(t, line, "latency")

	ts, ok := line["ts"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestLoggerWithWriter_ErrorStatus(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, time.UTC))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNotFound)
	})

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, float64(http.StatusNotFound), line["status"])
}
