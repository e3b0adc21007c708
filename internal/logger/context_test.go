package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := ContextWithCorrelationID(context.Background(), "18cc6b0a000T1704067200000")
	assert.Equal(t, "18cc6b0a000T1704067200000", CorrelationIDFromContext(ctx))

	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))
}

func TestWithContext_AddsCorrelationField(t *testing.T) {
	entry := WithContext(ContextWithCorrelationID(context.Background(), "abcT1"))
	assert.Equal(t, "abcT1", entry.Data["correlationId"])

	entry = WithContext(context.Background())
	_, ok := entry.Data["correlationId"]
	assert.False(t, ok)
}
