package soa

import "io"

// ServiceListener receives change events dispatched by a Service.
type ServiceListener[V any] interface {
	ProcessAdd(v V)
	ProcessUpdate(v V)
	ProcessRemove(v V)
}

// Service is a keyed store of values with typed listeners.
type Service[K comparable, V any] interface {
	// GetData returns the current entity for a key, or the zero value.
	GetData(key K) V

	// OnMessage is the ingress path from a connector or upstream listener.
	OnMessage(v V)

	// AddListener registers a listener. Registration order is preserved
	// and equals dispatch order.
	AddListener(listener ServiceListener[V])

	// Listeners returns all registered listeners in registration order.
	Listeners() []ServiceListener[V]
}

// Connector moves values across a service boundary. Subscribe reads rows
// from a source and pushes them into the owning service via OnMessage;
// Publish emits values outward and is a no-op for subscribe-only
// connectors.
type Connector[V any] interface {
	Subscribe(r io.Reader) error
	Publish(v V)
}
