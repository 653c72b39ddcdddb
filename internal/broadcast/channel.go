package broadcast

import (
	"context"
	"sync"
)

// Channel is a bounded multi-consumer fan-out channel for text frames.
//
// Every published frame is visible to all cursors; each cursor tracks its own
// read position. The channel is lossy for slow consumers: a cursor that falls
// more than the buffer capacity behind the publish rate skips forward to the
// oldest retained frame, dropping the overwritten ones. Publish never blocks.
//
// Frames are delivered to every cursor in publish order. Dropped frames are
// counted per cursor and observable via Cursor.Dropped.
type Channel struct {
	mu     sync.Mutex
	buf    []string
	next   uint64        // sequence number of the next published frame
	signal chan struct{} // closed and replaced on every publish
}

// NewChannel creates a fan-out channel retaining the last capacity frames.
func NewChannel(capacity int) *Channel {
	if capacity <= 0 {
		panic("broadcast: channel capacity must be positive")
	}
	return &Channel{
		buf:    make([]string, capacity),
		signal: make(chan struct{}),
	}
}

// Publish appends a frame and wakes all waiting cursors. It never blocks;
// cursors lagging more than the capacity lose the oldest unread frames.
func (ch *Channel) Publish(frame string) {
	ch.mu.Lock()
	ch.buf[ch.next%uint64(len(ch.buf))] = frame
	ch.next++
	close(ch.signal)
	ch.signal = make(chan struct{})
	ch.mu.Unlock()
}

// Subscribe returns a new cursor positioned after the most recent frame.
// Frames published before Subscribe are never observed by the new cursor.
func (ch *Channel) Subscribe() *Cursor {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return &Cursor{ch: ch, pos: ch.next}
}

// Cursor is one consumer's independent read position on a Channel.
// A Cursor must not be used from multiple goroutines concurrently.
type Cursor struct {
	ch      *Channel
	pos     uint64
	dropped uint64
}

// Receive blocks until a frame is available or ctx is done. If the cursor has
// lagged past the channel capacity it silently skips to the oldest retained
// frame, adding the skipped count to Dropped.
func (c *Cursor) Receive(ctx context.Context) (string, error) {
	for {
		c.ch.mu.Lock()
		if c.pos < c.ch.next {
			capacity := uint64(len(c.ch.buf))
			if c.ch.next-c.pos > capacity {
				skipped := c.ch.next - capacity - c.pos
				c.dropped += skipped
				c.pos = c.ch.next - capacity
			}
			frame := c.ch.buf[c.pos%capacity]
			c.pos++
			c.ch.mu.Unlock()
			return frame, nil
		}
		signal := c.ch.signal
		c.ch.mu.Unlock()

		select {
		case <-signal:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
}

// Dropped reports how many frames this cursor has lost to lossy overflow.
func (c *Cursor) Dropped() uint64 {
	c.ch.mu.Lock()
	defer c.ch.mu.Unlock()
	return c.dropped
}
