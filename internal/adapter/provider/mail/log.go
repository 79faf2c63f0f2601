package mail

import (
	"context"
	"log/slog"
)

// LogSender writes messages to the log instead of sending them.
// Used when no SendGrid key is configured.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a logging sender.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("adapter", "mail_log")}
}

// Send logs the message and always succeeds.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.log.InfoContext(ctx, "mail not sent (no provider configured)",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Any("data", msg.Data))
	return nil
}
