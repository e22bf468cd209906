package logging

import (
	"log/slog"
	"os"

	"gorm.io/gorm"
)

// Setup routes the default logger to JSON on stdout. Called before the
// database is up so early startup errors are still structured.
func Setup() {
	slog.SetDefault(slog.New(stdoutHandler()))
}

// AttachDBSink rebuilds the default logger as a fan-out of stdout and a
// database sink that persists ERROR records. The returned handler must be
// stopped on shutdown so buffered entries get flushed.
func AttachDBSink(db *gorm.DB) *PGHandler {
	pg := NewPGHandler(db)
	slog.SetDefault(slog.New(NewMultiHandler(stdoutHandler(), pg)))
	return pg
}

func stdoutHandler() slog.Handler {
	return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
