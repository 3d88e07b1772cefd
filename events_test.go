package timesystem

import (
	"context"
	"errors"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrationEvent(t *testing.T) {
	event := NewRegistrationEvent(EventTypeToolRegistered, []string{"tipLib"})

	assert.Equal(t, EventTypeToolRegistered, event.Type())
	assert.Equal(t, EventSource, event.Source())
	assert.NotEmpty(t, event.ID())
	assert.False(t, event.Time().IsZero())
	require.NoError(t, event.Validate())

	var data struct {
		Names []string `json:"names"`
	}
	require.NoError(t, event.DataAs(&data))
	assert.Equal(t, []string{"tipLib"}, data.Names)
}

func TestRegistrationEventIDsAreUnique(t *testing.T) {
	first := NewRegistrationEvent(EventTypeLibraryRegistered, []string{"timeSystem"})
	second := NewRegistrationEvent(EventTypeLibraryRegistered, []string{"timeSystem"})

	assert.NotEqual(t, first.ID(), second.ID())
}

func TestFunctionalObserver(t *testing.T) {
	var received []cloudevents.Event
	observer := NewFunctionalObserver("test-observer", func(ctx context.Context, event cloudevents.Event) error {
		received = append(received, event)
		return nil
	})

	assert.Equal(t, "test-observer", observer.ObserverID())

	event := NewRegistrationEvent(EventTypeToolRegistered, []string{"st_appLib"})
	require.NoError(t, observer.OnEvent(context.Background(), event))
	require.Len(t, received, 1)
	assert.Equal(t, event.ID(), received[0].ID())
}

func TestFunctionalObserverPropagatesHandlerError(t *testing.T) {
	wantErr := errors.New("handler failed")
	observer := NewFunctionalObserver("failing", func(ctx context.Context, event cloudevents.Event) error {
		return wantErr
	})

	err := observer.OnEvent(context.Background(), NewRegistrationEvent(EventTypeToolRegistered, nil))
	assert.ErrorIs(t, err, wantErr)
}
