package daemon

import (
	"context"
	"time"

	"hostevents/internal/events"
	"hostevents/internal/screens"
	"hostevents/internal/upstream"
)

// Daemon owns the push source, the command observer and the registry built
// on top of them.
type Daemon struct {
	hub      *upstream.Hub
	loop     *upstream.Loop
	commands *events.CommandsObserver
	registry *events.Registry

	startTime time.Time
}

// New constructs a Daemon from cfg. Nothing runs until Run is called.
func New(cfg Config) *Daemon {
	cfg = cfg.withDefaults()
	hub := upstream.NewHub(upstream.WithErrorHandler(cfg.OnListenerError))
	receiver := events.NewNativeEventsReceiver(hub)
	commands := events.NewCommandsObserver(events.WithErrorHandler(cfg.OnListenerError))
	return &Daemon{
		hub:       hub,
		loop:      upstream.NewLoop(hub, cfg.QueueSize),
		commands:  commands,
		registry:  events.New(receiver, commands, screens.NewBinder(receiver)),
		startTime: time.Now(),
	}
}

// Run processes deliveries until ctx is canceled, then closes the push
// source so later registrations fail fast.
func (d *Daemon) Run(ctx context.Context) error {
	defer d.hub.Close()
	return d.loop.Run(ctx)
}

// Ready reports whether the event loop is accepting deliveries.
func (d *Daemon) Ready() bool { return d.loop.Running() }

// Registry returns the façade application code subscribes through.
func (d *Daemon) Registry() *events.Registry { return d.registry }
