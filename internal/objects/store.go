package objects

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/KostasZigo/gostore/internal/clock"
	"github.com/KostasZigo/gostore/internal/constants"
	"github.com/KostasZigo/gostore/internal/result"
)

// ObjectStore owns the branch table and the head pointer and routes every
// operation to the head branch. It is safe for concurrent use; each
// operation holds the store lock for its whole duration.
type ObjectStore struct {
	mu       sync.Mutex
	branches map[string]*Branch
	head     string // always a key of branches
	clock    clock.Clock
}

// Option configures an ObjectStore at construction.
type Option func(*ObjectStore)

// WithClock sets the clock used to stamp commits.
func WithClock(c clock.Clock) Option {
	return func(store *ObjectStore) {
		store.clock = c
	}
}

// NewObjectStore creates a store holding a single empty master branch.
func NewObjectStore(opts ...Option) *ObjectStore {
	store := &ObjectStore{
		branches: map[string]*Branch{
			constants.DefaultBranch: NewBranch(constants.DefaultBranch, nil),
		},
		head:  constants.DefaultBranch,
		clock: clock.Real(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// headBranch returns the branch operations target. Caller holds mu.
func (store *ObjectStore) headBranch() *Branch {
	return store.branches[store.head]
}

// HeadBranch returns the name of the current branch.
func (store *ObjectStore) HeadBranch() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.head
}

// Add stages object under name on the head branch. It always succeeds.
func (store *ObjectStore) Add(name string, object any) result.Result[any] {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.headBranch().Add(name, object)
	return result.OK(fmt.Sprintf("Added %s to stage.", name), object)
}

// Remove stages the removal of a committed object and returns its value.
func (store *ObjectStore) Remove(name string) result.Result[any] {
	store.mu.Lock()
	defer store.mu.Unlock()

	object, ok := store.headBranch().Remove(name)
	if !ok {
		return notCommitted[any](name)
	}
	return result.OK(fmt.Sprintf("Added %s for removal.", name), object)
}

// Commit turns the head branch's staging area into a new commit. A clean
// staging area yields a no-op result and leaves the history untouched.
func (store *ObjectStore) Commit(message string) result.Result[*Commit] {
	store.mu.Lock()
	defer store.mu.Unlock()

	branch := store.headBranch()
	if !branch.HasStagedChanges() {
		return result.NoOp[*Commit](result.KindNothingToCommit, "Nothing to commit, working directory clean.")
	}

	commit, changed := branch.Commit(message, store.clock.Now())
	return result.OK(fmt.Sprintf("%s\n\t%d objects changed", message, changed), commit)
}

// Checkout rewinds the head branch to the commit with the given hash.
func (store *ObjectStore) Checkout(hash string) result.Result[*Commit] {
	store.mu.Lock()
	defer store.mu.Unlock()

	commit, ok := store.headBranch().Checkout(hash)
	if !ok {
		return result.Fail[*Commit](result.KindNotFound, fmt.Sprintf("Commit %s does not exist.", hash))
	}
	return result.OK(fmt.Sprintf("HEAD is now at %s.", hash), commit)
}

// Get returns name's value in the head branch's last commit.
func (store *ObjectStore) Get(name string) result.Result[any] {
	store.mu.Lock()
	defer store.mu.Unlock()

	object, ok := store.headBranch().Get(name)
	if !ok {
		return notCommitted[any](name)
	}
	return result.OK(fmt.Sprintf("Found object %s.", name), object)
}

// Log renders the head branch's history, most recent commit first.
// The payload holds the commits in the same order.
func (store *ObjectStore) Log() result.Result[[]*Commit] {
	store.mu.Lock()
	defer store.mu.Unlock()

	branch := store.headBranch()
	if branch.Len() == 0 {
		return noCommits[[]*Commit](branch.Name())
	}

	commits := branch.History()
	slices.Reverse(commits)

	entries := make([]string, len(commits))
	for i, commit := range commits {
		entries[i] = commit.LogEntry()
	}

	return result.OK(strings.Join(entries, constants.LogEntrySeparator), commits)
}

// Head returns the head branch's last commit; the message is the commit message.
func (store *ObjectStore) Head() result.Result[*Commit] {
	store.mu.Lock()
	defer store.mu.Unlock()

	branch := store.headBranch()
	commit, ok := branch.Head()
	if !ok {
		return noCommits[*Commit](branch.Name())
	}
	return result.OK(commit.Message(), commit)
}

// Staged reports the head branch's pending additions and removals.
func (store *ObjectStore) Staged() (map[string]any, []string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.headBranch().Staged()
}

// Reset discards the head branch's staged changes.
func (store *ObjectStore) Reset() result.Result[int] {
	store.mu.Lock()
	defer store.mu.Unlock()

	branch := store.headBranch()
	dropped := branch.StagedCount()
	if dropped == 0 {
		return result.NoOp[int](result.KindNothingToCommit, "Nothing to reset, working directory clean.")
	}

	branch.Reset()
	slog.Debug("Reset staging area",
		"branch", branch.Name(),
		"dropped", dropped)

	return result.OK(fmt.Sprintf("Dropped %d staged changes.", dropped), dropped)
}

// Branch returns a manager for the store's branches.
func (store *ObjectStore) Branch() *BranchManager {
	return &BranchManager{store: store}
}

func notCommitted[T any](name string) result.Result[T] {
	return result.Fail[T](result.KindNotCommitted, fmt.Sprintf("Object %s is not committed.", name))
}

func noCommits[T any](branch string) result.Result[T] {
	return result.Fail[T](result.KindNoCommits, fmt.Sprintf("Branch %s does not have any commits yet.", branch))
}
