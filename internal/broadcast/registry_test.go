package broadcast

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndRegister(t *testing.T) {
	registry := NewRegistry()

	room := registry.CreateAndRegister("10.0.0.1:1234")

	assert.True(t, registry.IsLive(room.ID.String()))
	assert.Equal(t, 1, registry.SubscriberCount(room.ID))
}

func TestRegistry_RoomIDsAreUnique(t *testing.T) {
	registry := NewRegistry()

	a := registry.CreateAndRegister("10.0.0.1:1234")
	b := registry.CreateAndRegister("10.0.0.2:1234")

	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, registry.IsLive(a.ID.String()))
	assert.True(t, registry.IsLive(b.ID.String()))
}

func TestRegistry_IsLiveFailsClosed(t *testing.T) {
	registry := NewRegistry()
	registry.CreateAndRegister("10.0.0.1:1234")

	assert.False(t, registry.IsLive(uuid.NewString()))
	assert.False(t, registry.IsLive("not-a-uuid"))
	assert.False(t, registry.IsLive(""))
}

func TestRegistry_AttachSubscriberUnknownRoom(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.AttachSubscriber(uuid.NewString(), "10.0.0.2:1234")
	assert.ErrorIs(t, err, ErrBroadcastNotFound)

	_, err = registry.AttachSubscriber("not-a-uuid", "10.0.0.2:1234")
	assert.ErrorIs(t, err, ErrBroadcastNotFound)
}

func TestRegistry_AttachSubscriberReceivesFrames(t *testing.T) {
	registry := NewRegistry()
	room := registry.CreateAndRegister("10.0.0.1:1234")

	cursor, err := registry.AttachSubscriber(room.ID.String(), "10.0.0.2:1234")
	require.NoError(t, err)
	assert.Equal(t, 2, registry.SubscriberCount(room.ID))

	room.Publish("scroll")

	frame, err := receiveWithTimeout(t, cursor)
	require.NoError(t, err)
	assert.Equal(t, "scroll", frame)
}

func TestRegistry_SubscriberCountUnknownRoom(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, 0, registry.SubscriberCount(uuid.New()))
}
