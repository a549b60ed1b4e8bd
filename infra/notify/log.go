// Package notify provides the built-in notification senders.
package notify

import (
	"context"
	"strings"

	"github.com/spaceshare/spaceshare/core/logger"
	corenotify "github.com/spaceshare/spaceshare/core/notify"
)

// LogSender writes messages to the logger instead of delivering them.
type LogSender struct {
	log logger.Logger
	// Body includes the message text in the log entry.
	Body bool
}

func NewLogSender(log logger.Logger, body bool) *LogSender {
	return &LogSender{log: log, Body: body}
}

func (s *LogSender) Send(ctx context.Context, m corenotify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fields := map[string]any{
		"kind":    m.Kind.String(),
		"group":   m.Group,
		"to":      strings.Join(m.To, ", "),
		"subject": m.Subject,
	}
	if s.Body {
		fields["body"] = m.Body
	}
	s.log.Debugw("dry run message", fields)
	s.log.Infof("writing to %s", strings.Join(m.To, ", "))
	return nil
}
