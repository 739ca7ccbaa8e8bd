package httpapi

import "time"

// maxBodyBytes controls the maximum allowed request body size for JSON endpoints.
var maxBodyBytes int64 = 1 << 20

// SetMaxBodyBytes allows configuring the maximum request body size.
func SetMaxBodyBytes(n int64) {
	if n <= 0 {
		maxBodyBytes = 1 << 20
		return
	}
	maxBodyBytes = n
}

// streamWriteTimeout bounds each websocket frame write on /stream.
var streamWriteTimeout = 10 * time.Second

// SetStreamWriteTimeout sets the per-frame write deadline (<=0 restores the default).
func SetStreamWriteTimeout(d time.Duration) {
	if d <= 0 {
		d = 10 * time.Second
	}
	streamWriteTimeout = d
}

// streamBuffer is the number of frames a slow /stream client may lag behind
// before frames are dropped.
var streamBuffer = 64

// SetStreamBuffer sets the per-client frame buffer (<=0 restores the default).
func SetStreamBuffer(n int) {
	if n <= 0 {
		n = 64
	}
	streamBuffer = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
