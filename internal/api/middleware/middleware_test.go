package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"ap_payment_reports/internal/common"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDFormat(t *testing.T) {
	at := time.UnixMilli(1704067200000)
	id := correlationIDAt(at)
	assert.Equal(t, strconv.FormatInt(1704067200000, 16)+"T1704067200000", id)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+T[0-9]+$`), NewCorrelationID())
}

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString(CorrelationID(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	header := resp.Header.Get(fiber.HeaderXRequestID)
	assert.True(t, strings.Contains(header, "T"), header)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "client-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "client-id", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestHandleErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/known", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, common.ErrInvalidStatus)
	})
	app.Get("/unknown", func(c fiber.Ctx) error {
		return HandleErrorResponse(c, errors.New("boom"))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/known", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "RPT_002", body["code"])
	assert.Equal(t, "error", body["status"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "charset=utf-8")
}
