package events

// Event is anything that can be published on the bus.
type Event interface {
	// Type returns the event type identifier used for routing
	Type() string
}

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// Subscriber receives events from the bus.
type Subscriber interface {
	// ID returns a unique identifier for this subscriber
	ID() string

	// HandleEvent processes an event
	HandleEvent(event Event)

	// EventTypes returns the event types this subscriber wants, or nil
	// for all events
	EventTypes() []string
}
