package broadcast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/DonteRavae/livescript-server/internal/metrics"
)

const (
	writeDeadline = 5 * time.Second
	pingInterval  = 30 * time.Second
)

// errPumpClosed signals the normal end of a pump: socket closed, read/write
// failure, or the end command. Treated as a disconnect, not an error.
var errPumpClosed = errors.New("pump closed")

// ServeBroadcast drives one broadcaster connection from upgrade to teardown.
//
// It creates and registers a new room with addr as first subscriber, announces
// the broadcast on the room's channel, then runs the inbound and outbound
// pumps as a pair: whichever finishes first cancels the shared context, which
// closes the socket and unblocks the other. Blocks until both pumps exit.
func ServeBroadcast(ctx context.Context, registry *Registry, conn *websocket.Conn, addr string, clock clockwork.Clock) {
	room := registry.CreateAndRegister(addr)
	cursor := room.Subscribe()
	room.Publish(fmt.Sprintf("Broadcast %s started. %s joined.", room.ID, addr))

	group, ctx := errgroup.WithContext(ctx)

	// Closing the conn is the only way to unblock a pending ReadMessage.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	group.Go(func() error { return writePump(ctx, conn, cursor, clock) })
	group.Go(func() error { return readPump(conn, room) })
	_ = group.Wait()

	_ = conn.Close()
	slog.Debug("websocket context destroyed", "addr", addr, "broadcast_id", room.ID)
}

// readPump reads text frames from the socket and routes them through the
// command protocol onto the room's channel. Recognized commands are forwarded
// verbatim, unrecognized text is rewritten to InvalidMessageNotice, and the
// end command stops the pump without being forwarded.
func readPump(conn *websocket.Conn, room *Room) error {
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return errPumpClosed
		}
		if kind != websocket.TextMessage {
			continue
		}

		cmd, ok := ParseCommand(string(data))
		switch {
		case !ok:
			metrics.InvalidCommandsTotal.Inc()
			room.Publish(InvalidMessageNotice)
		case cmd == CmdStateEnd:
			return errPumpClosed
		default:
			room.Publish(string(data))
		}
	}
}

// writePump moves frames from a cursor to the socket, interleaving periodic
// pings. It stops silently on any write failure and returns when ctx is done.
func writePump(ctx context.Context, conn *websocket.Conn, cursor *Cursor, clock clockwork.Clock) error {
	frames := make(chan string)
	recvErr := make(chan error, 1)

	go func() {
		var seen uint64
		for {
			frame, err := cursor.Receive(ctx)
			if err != nil {
				recvErr <- err
				return
			}
			if dropped := cursor.Dropped(); dropped > seen {
				metrics.FramesDroppedTotal.Add(float64(dropped - seen))
				seen = dropped
			}
			select {
			case frames <- frame:
			case <-ctx.Done():
				recvErr <- ctx.Err()
				return
			}
		}
	}()

	ticker := clock.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-frames:
			_ = conn.SetWriteDeadline(clock.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return errPumpClosed
			}
		case <-ticker.Chan():
			_ = conn.SetWriteDeadline(clock.Now().Add(writeDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return errPumpClosed
			}
		case err := <-recvErr:
			return err
		}
	}
}
