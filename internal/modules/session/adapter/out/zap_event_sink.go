package out

import (
	"context"

	"go.uber.org/zap"

	"carbontrack/internal/modules/session/domain"
	sessionout "carbontrack/internal/modules/session/port/out"
)

type ZapEventSink struct {
	logger *zap.Logger
}

func NewZapEventSink(logger *zap.Logger) sessionout.EventSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapEventSink{logger: logger.Named("events")}
}

func (s *ZapEventSink) Publish(_ context.Context, sessionID string, events []domain.Event) {
	for _, e := range events {
		fields := []zap.Field{
			zap.String("session_id", sessionID),
			zap.String("kind", string(e.Kind)),
			zap.String("screen", string(e.Screen)),
			zap.String("title", e.Title),
		}
		if e.Kind == domain.EventWelcome {
			fields = append(fields, zap.String("identifier", e.Identifier), zap.Bool("registration", e.Registration))
		}
		s.logger.Info("session event", fields...)
	}
}
