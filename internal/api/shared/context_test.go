package shared

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in original context")

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "Expected a generated trace ID to be a UUID")

	assert.Empty(t, GetTraceID(ctx), "Expected original context to remain unchanged")
	assert.NotEqual(t, traceID, GetTraceID(SetTraceID(ctx)), "Expected a fresh ID per call")
}

func TestSetTraceIDReusesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "host/abc-000001")

	assert.Equal(t, "host/abc-000001", GetTraceID(SetTraceID(ctx)))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID when context has invalid type")
}
