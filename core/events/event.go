package events

// Event is implemented by every event type carried on the bus.
type Event interface {
	eventName() string
}

func (GroupingEvent) eventName() string     { return "grouping" }
func (NotificationEvent) eventName() string { return "notification" }

// Name returns a short identifier of the event type.
func Name(e Event) string { return e.eventName() }
