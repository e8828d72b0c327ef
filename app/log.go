package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// initLogger routes structured logs to a rotated file so they never
// corrupt the live tracker's terminal output.
func initLogger(pathToLog string) {
	w := &lumberjack.Logger{
		Filename:   pathToLog,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}

	slog.SetDefault(
		slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	)
}
