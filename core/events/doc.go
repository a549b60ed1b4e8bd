// Package events defines the events published on the event bus while ride
// groups are computed and announced.
//
// Available event types:
//   - GroupingEvent: one kind of one table has been grouped
//   - NotificationEvent: a group message has been handed to a sender
package events
