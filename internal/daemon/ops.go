package daemon

import (
	"hostevents/internal/events"
	"hostevents/pkg/types"
)

// Post queues a raw upstream notification for delivery.
func (d *Daemon) Post(n types.Notification) (events.Kind, error) {
	return d.loop.Post(n)
}

// NotifyCommand queues a local command for the command listeners.
func (d *Daemon) NotifyCommand(name string, payload any) error {
	return d.loop.Submit(func() { d.commands.Notify(name, payload) })
}

// Subscribe registers l through the registry.
func (d *Daemon) Subscribe(l events.Listener) (events.Subscription, error) {
	return d.registry.Subscribe(l)
}

// QueueLen returns the number of deliveries waiting on the loop.
func (d *Daemon) QueueLen() int { return d.loop.Len() }
