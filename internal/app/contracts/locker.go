package contracts

import (
	"context"
	"time"
)

// LockerService provides short-lived distributed locks keyed by resource,
// used to narrow the window on multi-step critical sections.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
