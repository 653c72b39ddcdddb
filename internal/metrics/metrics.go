// Package metrics defines the Prometheus instruments exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Broadcast engine metrics
var (
	// BroadcastsStartedTotal counts rooms created since process start.
	BroadcastsStartedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcasts_started_total",
			Help: "Total broadcast rooms created",
		},
	)

	// ActiveBroadcasts tracks rooms currently held in the registry.
	// Rooms are never removed, so this only rises (see DESIGN.md).
	ActiveBroadcasts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcasts_active",
			Help: "Broadcast rooms currently registered",
		},
	)

	// ConnectedSubscribers tracks subscriber connections with a live pump.
	ConnectedSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "broadcast_connected_subscribers",
			Help: "Subscriber connections currently pumping frames",
		},
	)

	// FramesPublishedTotal counts frames published on room channels.
	FramesPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_frames_published_total",
			Help: "Total frames published to room fan-out channels",
		},
	)

	// FramesDroppedTotal counts frames lost to lossy overflow on lagging
	// cursors.
	FramesDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_frames_dropped_total",
			Help: "Total frames dropped for consumers lagging past channel capacity",
		},
	)

	// InvalidCommandsTotal counts inbound frames rewritten to the invalid
	// notice.
	InvalidCommandsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "broadcast_invalid_commands_total",
			Help: "Total inbound frames that did not parse as a command",
		},
	)
)
