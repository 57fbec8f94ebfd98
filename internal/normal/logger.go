package normal

import (
	"log/slog"

	"github.com/llehouerou/vimpd/internal/logging"
)

var logger *slog.Logger

func init() {
	logging.RegisterSetLoggerFunc(func(l *slog.Logger) {
		logger = l.With("pkg", "normal")
	})
}
