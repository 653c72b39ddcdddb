package broadcast

import (
	"context"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	"github.com/DonteRavae/livescript-server/internal/metrics"
)

// RejectionNotice is sent to a subscriber whose first frame does not name a
// live broadcast, just before the connection is closed.
const RejectionNotice = "Broadcast doesn't exist!"

// ServeSubscribe drives one subscriber connection.
//
// The handshake waits for the first text frame, which must be the room id.
// Unknown or malformed ids get RejectionNotice and a closed connection.
// On success the handler attaches to the room and runs the outbound pump
// until the socket fails or ctx is done. Subscribers never publish.
func ServeSubscribe(ctx context.Context, registry *Registry, conn *websocket.Conn, addr string, clock clockwork.Clock) {
	defer func() { _ = conn.Close() }()

	var id string
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if kind == websocket.TextMessage {
			id = string(data)
			break
		}
	}

	cursor, err := registry.AttachSubscriber(id, addr)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(RejectionNotice))
		slog.Debug("subscriber rejected", "addr", addr, "broadcast_id", id)
		return
	}

	metrics.ConnectedSubscribers.Inc()
	defer metrics.ConnectedSubscribers.Dec()

	_ = writePump(ctx, conn, cursor, clock)
	slog.Debug("subscriber disconnected", "addr", addr, "broadcast_id", id)
}
