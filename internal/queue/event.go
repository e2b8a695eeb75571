// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue name for shopping list change events.
const EventsQueueName = "shopping.events"

// Actions recorded in ListChangedEvent.Action.
const (
	ActionItemAdded   = "item.added"
	ActionItemRemoved = "item.removed"
	ActionListCleared = "list.cleared"
)

// ListChangedEvent is published after every successful mutation of the
// shopping list.  It carries enough information for downstream consumers to
// log or trigger notifications without calling back into the API.
type ListChangedEvent struct {
	Action     string `json:"action"`          // one of the Action* constants
	Item       string `json:"item,omitempty"`  // item name for add/remove, empty for clear
	Count      int    `json:"count"`           // list size after the mutation
	OccurredAt string `json:"occurred_at"`     // RFC 3339 UTC timestamp
}
