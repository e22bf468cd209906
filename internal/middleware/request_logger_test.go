package middleware

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureSink keeps every record handed to the default logger.
type captureSink struct {
	mu      sync.Mutex
	records []slog.Record
}

func (s *captureSink) Enabled(context.Context, slog.Level) bool { return true }

func (s *captureSink) Handle(_ context.Context, r slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r.Clone())
	return nil
}

func (s *captureSink) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *captureSink) WithGroup(string) slog.Handler      { return s }

func (s *captureSink) last(t *testing.T) slog.Record {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.records)
	return s.records[len(s.records)-1]
}

func attrMap(r slog.Record) map[string]interface{} {
	m := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		m[a.Key] = a.Value.Any()
		return true
	})
	return m
}

func withCaptureSink(t *testing.T) *captureSink {
	t.Helper()
	sink := &captureSink{}
	prev := slog.Default()
	slog.SetDefault(slog.New(sink))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return sink
}

func TestRequestLoggerRecordsActionAndLatency(t *testing.T) {
	sink := withCaptureSink(t)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger())
	app.Get("/api/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	record := sink.last(t)
	assert.Equal(t, slog.LevelInfo, record.Level)

	attrs := attrMap(record)
	assert.Equal(t, "GET /api/health", attrs["action"])
	assert.NotEmpty(t, attrs["trace_id"])
	assert.Equal(t, int64(fiber.StatusOK), attrs["status"])

	latency, ok := attrs["latency_ms"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, latency, int64(0))
}

func TestRequestLoggerEmitsErrorForServerFailures(t *testing.T) {
	sink := withCaptureSink(t)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger())
	app.Get("/api/orders", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db unreachable")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	record := sink.last(t)
	assert.Equal(t, slog.LevelError, record.Level)

	attrs := attrMap(record)
	assert.Equal(t, "GET /api/orders", attrs["action"])
	assert.Equal(t, "db unreachable", attrs["error"])
	assert.Equal(t, int64(fiber.StatusInternalServerError), attrs["status"])
}

func TestRequestLoggerKeepsClientErrorsAtInfo(t *testing.T) {
	sink := withCaptureSink(t)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger())
	app.Get("/api/faqs", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "missing")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/faqs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, slog.LevelInfo, sink.last(t).Level)
}
