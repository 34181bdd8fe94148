// Package clock abstracts the wall clock used to stamp commits.
// Production code uses Real(); tests use Fake() to pin commit
// timestamps and therefore commit hashes.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
