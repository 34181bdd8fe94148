package objects

import (
	"testing"
	"time"

	"github.com/KostasZigo/gostore/internal/clock"
	"github.com/KostasZigo/gostore/testutils"
)

// newTestStore creates a store stamped by a fake clock standing at testutils.FixedTime.
func newTestStore(t *testing.T) (*ObjectStore, *clock.FakeClock) {
	t.Helper()

	fake := testutils.NewFakeClock()
	return NewObjectStore(WithClock(fake)), fake
}

// addAndCommit stages name=object and commits it, failing the test on a non-successful commit.
func addAndCommit(t *testing.T, store *ObjectStore, name string, object any, message string) *Commit {
	t.Helper()

	testutils.AssertSuccess(t, store.Add(name, object))
	return testutils.AssertSuccess(t, store.Commit(message))
}

// commitAfter advances the clock past the hash resolution before committing,
// so every commit created this way has a distinct hash.
func commitAfter(t *testing.T, store *ObjectStore, fake *clock.FakeClock, name string, object any, message string) *Commit {
	t.Helper()

	fake.Advance(time.Minute)
	return addAndCommit(t, store, name, object, message)
}

// headBranchOf exposes the store's head branch to tests.
func headBranchOf(store *ObjectStore) *Branch {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.headBranch()
}

// branchOf exposes a named branch to tests.
func branchOf(store *ObjectStore, name string) (*Branch, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	branch, ok := store.branches[name]
	return branch, ok
}

// assertHashes verifies the branch history holds exactly the given commits, in order.
func assertHashes(t *testing.T, branch *Branch, expected ...*Commit) {
	t.Helper()

	history := branch.History()
	if len(history) != len(expected) {
		t.Fatalf("Expected %d commits on %s, got %d", len(expected), branch.Name(), len(history))
	}
	for i := range expected {
		if history[i] != expected[i] {
			t.Fatalf("Commit %d on %s: expected %s, got %s", i, branch.Name(), expected[i].Hash(), history[i].Hash())
		}
	}
}
