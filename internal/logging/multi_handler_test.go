package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink collects records at or above its level.
type memorySink struct {
	level   slog.Level
	records []slog.Record
}

func (s *memorySink) Enabled(_ context.Context, l slog.Level) bool { return l >= s.level }

func (s *memorySink) Handle(_ context.Context, r slog.Record) error {
	s.records = append(s.records, r)
	return nil
}

func (s *memorySink) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *memorySink) WithGroup(string) slog.Handler      { return s }

func TestMultiHandlerRoutesByLevel(t *testing.T) {
	info := &memorySink{level: slog.LevelInfo}
	errOnly := &memorySink{level: slog.LevelError}
	m := NewMultiHandler(info, errOnly)

	ctx := context.Background()
	assert.True(t, m.Enabled(ctx, slog.LevelInfo))
	assert.True(t, m.Enabled(ctx, slog.LevelError))

	require.NoError(t, m.Handle(ctx, slog.NewRecord(time.Now(), slog.LevelInfo, "request completed", 0)))
	require.NoError(t, m.Handle(ctx, slog.NewRecord(time.Now(), slog.LevelError, "request failed", 0)))

	assert.Len(t, info.records, 2)
	require.Len(t, errOnly.records, 1)
	assert.Equal(t, "request failed", errOnly.records[0].Message)
}
