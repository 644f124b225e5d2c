package account

import "time"

// Clock supplies the current time. The default consumption record derives
// its statement period from the wall clock at lookup time; tests inject a
// fixed instant instead.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
