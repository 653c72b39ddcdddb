package broadcast

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/DonteRavae/livescript-server/internal/metrics"
)

// channelCapacity is how many frames a room's fan-out channel retains for
// lagging cursors before dropping the oldest.
const channelCapacity = 11

// ErrBroadcastNotFound is returned when a subscriber references a room id
// that is malformed or not registered.
var ErrBroadcastNotFound = errors.New("broadcast not found")

// Room is one live broadcast session: a unique id, the set of subscriber
// addresses, and the fan-out channel carrying its frames.
//
// The subscriber set is guarded by the owning Registry's lock and is
// insert-only: addresses are never pruned on disconnect (see DESIGN.md).
type Room struct {
	ID          uuid.UUID
	subscribers map[string]struct{}
	channel     *Channel
}

// Publish sends a frame to every cursor on the room's channel. Never blocks.
func (r *Room) Publish(frame string) {
	r.channel.Publish(frame)
	metrics.FramesPublishedTotal.Inc()
}

// Subscribe returns a new cursor on the room's channel. The cursor observes
// only frames published after this call.
func (r *Room) Subscribe() *Cursor {
	return r.channel.Subscribe()
}

// Registry is the process-wide table of live rooms. All access to the room
// map and to each room's subscriber set happens under a single mutex; the
// critical sections cover only map and set mutation, never socket I/O.
type Registry struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]*Room
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[uuid.UUID]*Room)}
}

// CreateAndRegister builds a new room with a fresh channel and the initiating
// address as its first subscriber, registers it, and returns it. Room ids are
// random v4 UUIDs, so registration cannot collide.
func (g *Registry) CreateAndRegister(addr string) *Room {
	room := &Room{
		ID:          uuid.New(),
		subscribers: map[string]struct{}{addr: {}},
		channel:     NewChannel(channelCapacity),
	}

	g.mu.Lock()
	g.rooms[room.ID] = room
	g.mu.Unlock()

	metrics.BroadcastsStartedTotal.Inc()
	metrics.ActiveBroadcasts.Inc()
	return room
}

// IsLive reports whether id names a registered room. It fails closed:
// malformed ids and unknown ids both return false.
func (g *Registry) IsLive(id string) bool {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.rooms[roomID]
	return ok
}

// AttachSubscriber atomically looks up the room, records addr in its
// subscriber set, and returns a new cursor on its channel. The lookup and
// attach happen under one lock acquisition, so a room cannot vanish between
// a liveness check and attachment. Returns ErrBroadcastNotFound for
// malformed or unregistered ids.
func (g *Registry) AttachSubscriber(id, addr string) (*Cursor, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBroadcastNotFound
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[roomID]
	if !ok {
		return nil, ErrBroadcastNotFound
	}
	room.subscribers[addr] = struct{}{}
	return room.channel.Subscribe(), nil
}

// SubscriberCount returns how many addresses are recorded for a room, or 0
// if the room is not registered.
func (g *Registry) SubscriberCount(id uuid.UUID) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	room, ok := g.rooms[id]
	if !ok {
		return 0
	}
	return len(room.subscribers)
}
