package player

import (
	"log/slog"

	"github.com/llehouerou/vimpd/internal/logging"
)

var logger *slog.Logger

func init() {
	logging.RegisterSetLoggerFunc(func(l *slog.Logger) {
		logger = l.With("pkg", "player")
	})
}

func logError(op string, err error) {
	if err != nil {
		logger.Warn("transport command failed", "op", op, "err", err)
	}
}
