// internal/event/event.go
package event

// EventType names a simulation event.
type EventType string

// Event carries an event and its payload.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener is the interface for event subscribers.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribers, synchronously.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for an event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch delivers the event to every subscriber before returning.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
