// Package daemon wires the events registry to its collaborators for the
// hostevents server. It is structured into small files by concern:
//
//   - config.go: Config and package defaults; New applies defaults.
//   - daemon.go: Daemon, its lifecycle (Run) and accessors.
//   - ops.go: operations the HTTP layer calls (Post, NotifyCommand, Subscribe).
//   - status_report.go: Status reporting for GET /status.
//
// All listener invocations happen on the upstream loop goroutine: native
// notifications are queued by Post and local commands by NotifyCommand.
package daemon
