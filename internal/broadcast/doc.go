// Package broadcast implements the live broadcast engine: the room registry,
// the bounded lossy fan-out channel, the command protocol, and the two
// websocket connection handlers (broadcaster and subscriber).
//
// A broadcaster connection owns exactly one Room. Every text frame it sends
// passes through the command protocol and is published on the room's fan-out
// channel; subscribers (and the broadcaster itself) each hold an independent
// cursor on that channel and pump frames to their own socket.
package broadcast
