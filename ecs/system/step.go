package system

import (
	"io"
	"log/slog"
)

// Step is the fixed simulation step. Ebiten ticks at 60 TPS by default and
// every system advances by exactly one tick per Update.
const Step = 1.0 / 60.0

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return discardLogger()
	}
	return log
}
