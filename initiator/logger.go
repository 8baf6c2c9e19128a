package initiator

import (
	"log/slog"

	slogzap "github.com/samber/slog-zap"
	"go.uber.org/zap"
)

func NewLogger(development bool) (*slog.Logger, error) {
	var (
		zapLogger *zap.Logger
		err       error
	)
	if development {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if development {
		level = slog.LevelDebug
	}
	handler := slogzap.Option{Level: level, Logger: zapLogger}.NewZapHandler()
	return slog.New(handler), nil
}
