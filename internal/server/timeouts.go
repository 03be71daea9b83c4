package server

import "time"

// writeTimeout must outlast the upstream model timeout so a slow reply
// still reaches the client.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 90 * time.Second
	idleTimeout  = 120 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 15 * time.Second
