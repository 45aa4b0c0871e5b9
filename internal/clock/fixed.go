package clock

import "time"

// Fixed returns a time source that always reports t.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}
