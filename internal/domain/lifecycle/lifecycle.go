// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and subscriptions.
const DefaultTimeout = 10 * time.Second
