package port

import (
	"context"
	"time"
)

// Locker hands out short-lived exclusive leases shared across processes.
type Locker interface {
	// TryLock acquires key for ttl. ok is false when another holder owns
	// it. The returned release func is safe to call once the lease expired.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
