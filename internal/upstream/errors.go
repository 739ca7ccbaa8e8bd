package upstream

import "errors"

var (
	// ErrClosed is returned when registering on a closed Hub.
	ErrClosed = errors.New("upstream source closed")

	// ErrQueueFull is returned when the loop cannot accept more work.
	ErrQueueFull = errors.New("upstream queue full")

	// ErrStopped is returned when posting to a loop that is no longer running.
	ErrStopped = errors.New("upstream loop stopped")

	// ErrUnknownKind is returned for notifications outside the native catalog.
	ErrUnknownKind = errors.New("unknown notification kind")

	// ErrBadPayload is returned when a notification body is not valid JSON
	// or is not a JSON object.
	ErrBadPayload = errors.New("malformed notification payload")

	// ErrPartialPayload is reported through the hub's ErrorHandler when some
	// payload fields had the wrong JSON type. The event is still delivered
	// with those fields left at their zero value.
	ErrPartialPayload = errors.New("notification payload partially decoded")
)

// IsTooBusy reports whether err signals backpressure (return 429).
func IsTooBusy(err error) bool { return errors.Is(err, ErrQueueFull) }

// IsPartialPayload reports whether err describes a best-effort decode.
func IsPartialPayload(err error) bool { return errors.Is(err, ErrPartialPayload) }

// IsUnavailable reports whether err means the source no longer accepts work.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStopped) || errors.Is(err, ErrClosed)
}
