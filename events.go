// Package timesystem emits CloudEvents for registration activity so that
// build orchestrators can observe what a tool declared without coupling to
// its internals. Events follow the CloudEvents specification for
// interoperability with external tooling.
package timesystem

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Event type constants for registration events, in reverse domain notation
// per the CloudEvents specification.
const (
	EventTypeLibraryRegistered = "org.fermilat.timesystem.library.registered"
	EventTypeToolRegistered    = "org.fermilat.timesystem.tool.registered"
)

// EventSource is the CloudEvents source attribute for events emitted by
// this package's environments.
const EventSource = "github.com/fermi-lat/timesystem"

// CloudEvent is an alias for the CloudEvents Event type for convenience.
type CloudEvent = cloudevents.Event

// Observer receives registration events from an observable environment.
type Observer interface {
	// OnEvent is called for each registration. Observers should return
	// quickly; errors are logged by the emitter, not propagated to the
	// tool being generated.
	OnEvent(ctx context.Context, event cloudevents.Event) error

	// ObserverID returns a unique identifier for this observer, used for
	// registration tracking and debugging.
	ObserverID() string
}

// FunctionalObserver wraps a function as an Observer, for quick observer
// creation without defining a struct.
type FunctionalObserver struct {
	id      string
	handler func(ctx context.Context, event cloudevents.Event) error
}

// NewFunctionalObserver creates an observer that delegates to handler.
func NewFunctionalObserver(id string, handler func(ctx context.Context, event cloudevents.Event) error) Observer {
	return &FunctionalObserver{
		id:      id,
		handler: handler,
	}
}

// OnEvent implements Observer by calling the wrapped handler.
func (f *FunctionalObserver) OnEvent(ctx context.Context, event cloudevents.Event) error {
	return f.handler(ctx, event)
}

// ObserverID implements Observer.
func (f *FunctionalObserver) ObserverID() string {
	return f.id
}

// NewRegistrationEvent builds a CloudEvent describing a registration. The
// data payload carries the registered names.
func NewRegistrationEvent(eventType string, names []string) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(generateEventID())
	event.SetSource(EventSource)
	event.SetType(eventType)
	event.SetTime(time.Now())
	event.SetSpecVersion(cloudevents.VersionV1)
	_ = event.SetData(cloudevents.ApplicationJSON, map[string]any{
		"names": names,
	})
	return event
}

// generateEventID generates a unique identifier for CloudEvents using
// UUIDv7, which carries a timestamp and so yields time-ordered ids.
func generateEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails for any reason
		id = uuid.New()
	}
	return id.String()
}
