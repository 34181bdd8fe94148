package objects

import (
	"log/slog"
	"maps"
	"slices"
	"time"
)

// Branch is an ordered history of commits plus a staging area.
// Staged changes are invisible to Get until they are committed.
type Branch struct {
	name            string
	history         []*Commit
	stagedAdditions map[string]any
	// stagedRemovals keeps duplicates; each one counts towards the commit's change count.
	stagedRemovals []string
}

// NewBranch creates a branch whose history starts as a copy of the given
// commit list. The commits themselves are shared, the list is not.
func NewBranch(name string, history []*Commit) *Branch {
	return &Branch{
		name:            name,
		history:         slices.Clone(history),
		stagedAdditions: make(map[string]any),
	}
}

func (b *Branch) Name() string {
	return b.name
}

// History returns a copy of the commit list, oldest first.
func (b *Branch) History() []*Commit {
	return slices.Clone(b.history)
}

// Len returns the number of commits in the history.
func (b *Branch) Len() int {
	return len(b.history)
}

// Head returns the last commit, if any.
func (b *Branch) Head() (*Commit, bool) {
	if len(b.history) == 0 {
		return nil, false
	}
	return b.history[len(b.history)-1], true
}

// Add stages object under name, replacing any earlier staged addition.
func (b *Branch) Add(name string, object any) {
	b.stagedAdditions[name] = object
}

// Remove stages the removal of name if the last commit contains it and
// returns the committed value. Staged additions do not count as present.
func (b *Branch) Remove(name string) (any, bool) {
	object, ok := b.Get(name)
	if !ok {
		return nil, false
	}
	b.stagedRemovals = append(b.stagedRemovals, name)
	return object, true
}

// Get returns name's value in the last commit.
func (b *Branch) Get(name string) (any, bool) {
	head, ok := b.Head()
	if !ok {
		return nil, false
	}
	return head.Object(name)
}

// StagedCount returns how many changes the next commit would report.
func (b *Branch) StagedCount() int {
	return len(b.stagedAdditions) + len(b.stagedRemovals)
}

// HasStagedChanges reports whether the staging area holds anything.
func (b *Branch) HasStagedChanges() bool {
	return b.StagedCount() > 0
}

// Staged returns copies of the staged additions and removals.
func (b *Branch) Staged() (map[string]any, []string) {
	return maps.Clone(b.stagedAdditions), slices.Clone(b.stagedRemovals)
}

// Reset drops every staged change.
func (b *Branch) Reset() {
	b.stagedAdditions = make(map[string]any)
	b.stagedRemovals = nil
}

// Commit freezes the staging area into a new commit appended to the
// history and returns it with the number of staged changes it consumed.
// An empty staging area still produces a commit; callers decide whether
// that is wanted.
func (b *Branch) Commit(message string, timestamp time.Time) (*Commit, int) {
	var base map[string]any
	if head, ok := b.Head(); ok {
		base = head.snapshot()
	}

	commit := NewCommit(base, b.stagedAdditions, b.stagedRemovals, message, timestamp)
	b.history = append(b.history, commit)

	changed := b.StagedCount()
	b.Reset()

	slog.Debug("Created commit",
		"branch", b.name,
		"hash", commit.Hash(),
		"changed", changed)

	return commit, changed
}

// Checkout rewinds the history to the first commit whose hash matches,
// discarding every later commit from this branch. Other branches keep
// their own lists untouched.
func (b *Branch) Checkout(hash string) (*Commit, bool) {
	index := slices.IndexFunc(b.history, func(c *Commit) bool {
		return c.Hash() == hash
	})
	if index == -1 {
		return nil, false
	}

	discarded := len(b.history) - index - 1
	// Drop references to the discarded commits.
	clear(b.history[index+1:])
	b.history = b.history[:index+1]

	slog.Debug("Rewound branch",
		"branch", b.name,
		"hash", hash,
		"discarded", discarded)

	return b.history[index], true
}

// fork returns a new branch sharing this branch's commits at this instant,
// with an empty staging area.
func (b *Branch) fork(name string) *Branch {
	return NewBranch(name, b.history)
}
