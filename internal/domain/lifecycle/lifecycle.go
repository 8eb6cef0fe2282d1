// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as connection pings
// and graceful server drains.
const DefaultTimeout = 10 * time.Second
