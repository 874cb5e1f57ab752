package hoard

import "time"

// Clock provides the cache's notion of time. The default implementation
// uses time.Now(); inject a fake via WithClock to control expiry in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}
