package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	corenotify "github.com/spaceshare/spaceshare/core/notify"
)

// OutboxConfig configures an OutboxSender.
type OutboxConfig struct {
	Path string `json:"path"`
	From string `json:"from"`
}

// OutboxSender appends messages as JSON lines for an external mailer.
type OutboxSender struct {
	mu   sync.Mutex
	path string
	from string
	now  func() time.Time
}

type outboxEntry struct {
	corenotify.Message
	From     string    `json:"from,omitempty"`
	QueuedAt time.Time `json:"queued_at"`
}

func NewOutboxSender(cfg OutboxConfig) (*OutboxSender, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("outbox path is required")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &OutboxSender{path: cfg.Path, from: cfg.From, now: time.Now}, nil
}

func (s *OutboxSender) Send(ctx context.Context, m corenotify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(m.To) == 0 {
		return fmt.Errorf("message for group %d has no recipients", m.Group)
	}
	b, err := json.Marshal(outboxEntry{Message: m, From: s.from, QueuedAt: s.now().UTC()})
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
