package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ContextKey là type cho context keys
type ContextKey string

// CorrelationIDKey là key cho correlation id trong context
const CorrelationIDKey ContextKey = "correlationId"

// ContextWithCorrelationID gắn correlation id vào context để các layer dưới log cùng id
func ContextWithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

// CorrelationIDFromContext lấy correlation id đã gắn bằng ContextWithCorrelationID
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// WithContext trả về logger entry kèm correlation id trong context (nếu có)
func WithContext(ctx context.Context) *logrus.Entry {
	entry := GetAppLogger().WithContext(ctx)
	if id := CorrelationIDFromContext(ctx); id != "" {
		entry = entry.WithField("correlationId", id)
	}
	return entry
}

// WithCorrelation trả về logger entry với correlation id
func WithCorrelation(correlationID string) *logrus.Entry {
	return GetAppLogger().WithField("correlationId", correlationID)
}

// WithRequest trả về logger entry với thông tin request từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	entry := GetAppLogger().WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})
	if requestID := c.GetRespHeader(fiber.HeaderXRequestID); requestID != "" {
		entry = entry.WithField("correlationId", requestID)
	}
	return entry
}

// WithError trả về logger entry với error
func WithError(err error) *logrus.Entry {
	return GetErrorLogger().WithError(err)
}
