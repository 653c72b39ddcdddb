package broadcast

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveWithTimeout(t *testing.T, cursor *Cursor) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return cursor.Receive(ctx)
}

func TestChannel_DeliversInPublishOrder(t *testing.T) {
	ch := NewChannel(4)
	cursor := ch.Subscribe()

	ch.Publish("one")
	ch.Publish("two")
	ch.Publish("three")

	for _, want := range []string{"one", "two", "three"} {
		frame, err := receiveWithTimeout(t, cursor)
		require.NoError(t, err)
		assert.Equal(t, want, frame)
	}
}

func TestChannel_AllCursorsSeeEveryFrame(t *testing.T) {
	ch := NewChannel(4)
	a := ch.Subscribe()
	b := ch.Subscribe()

	ch.Publish("hello")

	frameA, err := receiveWithTimeout(t, a)
	require.NoError(t, err)
	frameB, err := receiveWithTimeout(t, b)
	require.NoError(t, err)

	assert.Equal(t, "hello", frameA)
	assert.Equal(t, "hello", frameB)
}

func TestChannel_LateSubscriberMissesEarlierFrames(t *testing.T) {
	ch := NewChannel(4)
	ch.Publish("before")

	cursor := ch.Subscribe()
	ch.Publish("after")

	frame, err := receiveWithTimeout(t, cursor)
	require.NoError(t, err)
	assert.Equal(t, "after", frame)
}

func TestChannel_LaggingCursorSkipsToOldestRetained(t *testing.T) {
	ch := NewChannel(3)
	cursor := ch.Subscribe()

	// Publish twice the capacity without the cursor keeping up.
	for i := 0; i < 6; i++ {
		ch.Publish(fmt.Sprintf("frame-%d", i))
	}

	// The cursor lost frames 0..2 and resumes at frame 3.
	frame, err := receiveWithTimeout(t, cursor)
	require.NoError(t, err)
	assert.Equal(t, "frame-3", frame)
	assert.Equal(t, uint64(3), cursor.Dropped())

	for _, want := range []string{"frame-4", "frame-5"} {
		frame, err := receiveWithTimeout(t, cursor)
		require.NoError(t, err)
		assert.Equal(t, want, frame)
	}
	assert.Equal(t, uint64(3), cursor.Dropped())
}

func TestChannel_ReceiveWakesOnPublish(t *testing.T) {
	ch := NewChannel(4)
	cursor := ch.Subscribe()

	got := make(chan string, 1)
	go func() {
		frame, err := cursor.Receive(context.Background())
		if err == nil {
			got <- frame
		}
	}()

	time.Sleep(10 * time.Millisecond)
	ch.Publish("wake up")

	select {
	case frame := <-got:
		assert.Equal(t, "wake up", frame)
	case <-time.After(time.Second):
		t.Fatal("cursor did not wake on publish")
	}
}

func TestChannel_ReceiveRespectsContextCancellation(t *testing.T) {
	ch := NewChannel(4)
	cursor := ch.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cursor.Receive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewChannel_PanicsOnInvalidCapacity(t *testing.T) {
	assert.Panics(t, func() { NewChannel(0) })
	assert.Panics(t, func() { NewChannel(-1) })
}
