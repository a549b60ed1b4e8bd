package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/factory"
	"github.com/spaceshare/spaceshare/core/logger"
	"github.com/spaceshare/spaceshare/internal/eventbus"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, m Message) error

func (f SenderFunc) Send(ctx context.Context, m Message) error { return f(ctx, m) }

// Dispatch sends every message and joins the failures. It stops early only
// when ctx is done.
func Dispatch(ctx context.Context, s Sender, msgs []Message) error {
	var errs []error
	for _, m := range msgs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := s.Send(ctx, m); err != nil {
			errs = append(errs, fmt.Errorf("%s group %d: %w", m.Kind, m.Group, err))
		}
	}
	return errors.Join(errs...)
}

// Notifier dispatches messages and reports each outcome on the event bus.
type Notifier struct {
	sender Sender
	bus    *eventbus.Bus[events.Event]
	log    logger.Logger
}

// NewNotifier wires a sender to an optional bus.
func NewNotifier(s Sender, bus *eventbus.Bus[events.Event], log logger.Logger) *Notifier {
	return &Notifier{sender: s, bus: bus, log: log}
}

// Notify sends msgs through Dispatch.
func (n *Notifier) Notify(ctx context.Context, msgs []Message) error {
	err := Dispatch(ctx, SenderFunc(n.send), msgs)
	if err != nil {
		n.log.Errorf("notifications failed: %v", err)
		return err
	}
	n.log.Infof("sent %d notifications", len(msgs))
	return nil
}

func (n *Notifier) send(ctx context.Context, m Message) error {
	err := n.sender.Send(ctx, m)
	if n.bus != nil {
		n.bus.Publish(events.NotificationEvent{
			Kind:       m.Kind,
			Group:      m.Group,
			Recipients: len(m.To),
			Err:        err,
			Time:       time.Now(),
		})
	}
	return err
}

var senderRegistry = factory.NewRegistry[Sender]("notification sender")

// RegisterSender adds a sender factory identified by name.
func RegisterSender(name string, f factory.Factory[Sender]) error {
	return senderRegistry.Register(name, f)
}

// NewSender creates a Sender from its module configuration.
func NewSender(cfg factory.ModuleConfig) (Sender, error) {
	return senderRegistry.Create(cfg)
}

// SenderNames lists the registered sender types.
func SenderNames() []string { return senderRegistry.Names() }
