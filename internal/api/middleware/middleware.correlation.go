package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

// NewCorrelationID sinh correlation id dạng <ms hex>T<ms thập phân>, vd: 18cc6b0a000T1704067200000
func NewCorrelationID() string {
	return correlationIDAt(time.Now())
}

func correlationIDAt(t time.Time) string {
	ms := t.UnixMilli()
	return fmt.Sprintf("%xT%d", ms, ms)
}

// RequestID middleware gắn correlation id vào header X-Request-ID của response.
// Client gửi sẵn X-Request-ID thì dùng lại id đó.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: NewCorrelationID,
	})
}

// CorrelationID lấy correlation id của request hiện tại, chưa có thì sinh mới và set vào header
func CorrelationID(c fiber.Ctx) string {
	if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
		return id
	}
	id := NewCorrelationID()
	c.Set(fiber.HeaderXRequestID, id)
	return id
}
