package types

import "encoding/json"

// Notification is one raw event handed over by the host transport.
type Notification struct {
	// Wire name of the event kind.
	// example: component-lifecycle
	Kind string `json:"kind" example:"component-lifecycle"`
	// Kind-specific JSON body, decoded by the upstream loop.
	Payload json.RawMessage `json:"payload,omitempty" swaggertype:"object"`
}

// CommandRequest is the body of POST /commands.
type CommandRequest struct {
	// Command name listeners filter on.
	// example: push
	Name string `json:"name" example:"push"`
	// Arbitrary command payload.
	Payload any `json:"payload,omitempty" swaggertype:"object"`
}

// AcceptedResponse acknowledges a queued notification or command.
type AcceptedResponse struct {
	// example: component-lifecycle
	Kind string `json:"kind" example:"component-lifecycle"`
	// Items waiting on the event loop after this one was queued.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
}

// StreamFrame is one websocket message on GET /stream.
type StreamFrame struct {
	// example: native-event
	Kind string `json:"kind" example:"native-event"`
	// Event or command name, when the kind carries one.
	// example: navigationButtonPressed
	Name string `json:"name,omitempty" example:"navigationButtonPressed"`
	// Event body as delivered to listeners.
	Data any `json:"data,omitempty" swaggertype:"object"`
	// Server time in unix milliseconds.
	// example: 1700000000000
	TimeUnixMs int64 `json:"time_unix_ms" example:"1700000000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Live registrations keyed by kind wire name.
	Subscriptions map[string]int `json:"subscriptions"`
	// Items waiting on the event loop.
	// example: 0
	QueueLen int `json:"queue_len" example:"0"`
	// Capacity of the event loop queue.
	// example: 256
	QueueCap int `json:"queue_cap" example:"256"`
	// Whether the event loop is running.
	// example: true
	Running bool `json:"running" example:"true"`
	// Notifications delivered since start.
	// example: 42
	Delivered uint64 `json:"delivered_total" example:"42"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
