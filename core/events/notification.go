package events

import (
	"time"

	"github.com/spaceshare/spaceshare/core/model"
)

// NotificationEvent is published for every message a sender accepted or
// rejected.
type NotificationEvent struct {
	Kind       model.Kind
	Group      int
	Recipients int
	Err        error
	Time       time.Time
}
