// Package events is the subscription registry that application code uses to
// observe host lifecycle and command events. It is structured into small
// files by concern:
//
//   - types.go: Kind, the event records and their lifecycle discriminants.
//   - listener.go: the closed set of listener func types.
//   - subscription.go: Subscription and the idempotent Handle.
//   - errors.go: RegistrationError, ListenerError, sentinels and ErrorHandler.
//   - commands.go: CommandsObserver, the in-process multicast for commands.
//   - receiver.go: Source (the upstream push capability) and
//     NativeEventsReceiver, which translates raw notifications.
//   - registry.go: Registry, the façade routing each kind to its owner.
//
// Dispatch is synchronous. Owners copy their listener table before invoking
// callbacks, so registrations and removals made by a listener take effect
// from the next dispatch pass onward.
//
// Callers construct a Registry explicitly from its three collaborators; there
// is no package-level instance.
package events
