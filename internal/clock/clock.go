package clock

import (
	"context"
	"time"
)

// Clock is read exactly once per report invocation; every sub-computation
// receives the captured instant instead of re-reading the wall clock.
type Clock interface {
	Now(ctx context.Context) time.Time
}
