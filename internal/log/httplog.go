package log

import (
	"time"
)

// LogHTTPRequest writes one access-log line for a completed request. Requests
// that ended in a server error are logged at error level.
func LogHTTPRequest(requestID, method, path string, status int, duration time.Duration, size int, remoteAddr, userAgent string) {
	fields := []interface{}{
		"request_id", requestID,
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"size", size,
		"remote_addr", remoteAddr,
		"user_agent", userAgent,
	}

	if status >= 500 {
		Errorw("http request", fields...)
		return
	}
	Infow("http request", fields...)
}
