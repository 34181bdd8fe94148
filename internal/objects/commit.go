package objects

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/KostasZigo/gostore/internal/constants"
	"github.com/KostasZigo/gostore/utils"
)

// Commit is an immutable snapshot of the full name → object mapping.
// Its hash is derived from the timestamp and message only.
type Commit struct {
	hash      string
	message   string
	timestamp time.Time
	objects   map[string]any
}

// NewCommit builds the snapshot that results from applying staged changes
// on top of old. Removals are applied after additions, so a name present
// in both is absent from the snapshot.
func NewCommit(old, added map[string]any, removed []string, message string, timestamp time.Time) *Commit {
	objects := make(map[string]any, len(old)+len(added))
	maps.Copy(objects, old)
	maps.Copy(objects, added)

	for _, name := range removed {
		delete(objects, name)
	}

	return &Commit{
		hash:      utils.ComputeCommitHash(timestamp, message),
		message:   message,
		timestamp: timestamp,
		objects:   objects,
	}
}

func (c *Commit) Hash() string {
	return c.hash
}

func (c *Commit) Message() string {
	return c.message
}

func (c *Commit) Timestamp() time.Time {
	return c.timestamp
}

// FormattedTimestamp returns the timestamp as it appears in the log and the hash.
func (c *Commit) FormattedTimestamp() string {
	return utils.FormatTimestamp(c.timestamp)
}

// Objects returns a copy of the snapshot.
func (c *Commit) Objects() map[string]any {
	return maps.Clone(c.snapshot())
}

// Object looks up a single name in the snapshot.
func (c *Commit) Object(name string) (any, bool) {
	object, ok := c.objects[name]
	return object, ok
}

// Names returns the snapshot's names in ascending order.
func (c *Commit) Names() []string {
	return slices.Sorted(maps.Keys(c.objects))
}

// Len returns the number of objects in the snapshot.
func (c *Commit) Len() int {
	return len(c.objects)
}

// snapshot returns the internal map; callers must not modify it.
func (c *Commit) snapshot() map[string]any {
	if c == nil {
		return nil
	}
	return c.objects
}

// LogEntry renders the commit as shown by ObjectStore.Log:
//
//	Commit <hash>
//	Date: <timestamp>
//
//		<message>
func (c *Commit) LogEntry() string {
	return fmt.Sprintf("%s%s\n%s%s\n\n\t%s",
		constants.LogCommitPrefix, c.hash,
		constants.LogDatePrefix, c.FormattedTimestamp(),
		c.message)
}

func (c *Commit) String() string {
	return fmt.Sprintf("Commit{hash: %s, objects: %d, message: %q}", c.hash, len(c.objects), c.message)
}
