package notify

import (
	"github.com/spaceshare/spaceshare/core/factory"
	corenotify "github.com/spaceshare/spaceshare/core/notify"
	"github.com/spaceshare/spaceshare/infra/logger"
)

type logConfig struct {
	Body bool `json:"body"`
}

// init registers built-in senders.
func init() {
	_ = corenotify.RegisterSender("log", func(conf map[string]any) (corenotify.Sender, error) {
		var c logConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewLogSender(logger.New("notify"), c.Body), nil
	})

	_ = corenotify.RegisterSender("outbox", func(conf map[string]any) (corenotify.Sender, error) {
		var c OutboxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewOutboxSender(c)
	})
}
