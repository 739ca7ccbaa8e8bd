package daemon

import (
	"time"

	"hostevents/internal/events"
	"hostevents/pkg/types"
)

// Status builds the response for GET /status.
func (d *Daemon) Status() types.StatusResponse {
	subs := make(map[string]int, len(events.Kinds()))
	for kind, n := range d.hub.Counts() {
		subs[kind.String()] = n
	}
	subs[events.KindCommand.String()] = d.commands.Len()
	now := time.Now()
	return types.StatusResponse{
		Subscriptions:  subs,
		QueueLen:       d.loop.Len(),
		QueueCap:       d.loop.Cap(),
		Running:        d.loop.Running(),
		Delivered:      d.loop.Delivered(),
		UptimeSeconds:  int64(now.Sub(d.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}
