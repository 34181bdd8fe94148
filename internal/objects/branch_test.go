package objects

import (
	"testing"
	"time"

	"github.com/KostasZigo/gostore/testutils"
)

// TestBranch_AddOverwritesStaged verifies a second add replaces the staged value.
func TestBranch_AddOverwritesStaged(t *testing.T) {
	branch := NewBranch("master", nil)

	branch.Add("a", 1)
	branch.Add("a", 2)

	if branch.StagedCount() != 1 {
		t.Fatalf("Expected 1 staged change, got %d", branch.StagedCount())
	}

	commit, changed := branch.Commit("m", testutils.FixedTime())
	if changed != 1 {
		t.Fatalf("Expected 1 changed object, got %d", changed)
	}
	if object, _ := commit.Object("a"); object != 2 {
		t.Fatalf("Expected a=2, got %v", object)
	}
}

// TestBranch_GetIgnoresStaged verifies staged changes stay invisible.
func TestBranch_GetIgnoresStaged(t *testing.T) {
	branch := NewBranch("master", nil)

	branch.Add("a", 1)
	if _, ok := branch.Get("a"); ok {
		t.Fatal("Expected staged object to be invisible before commit")
	}

	branch.Commit("m", testutils.FixedTime())
	branch.Add("a", 2)

	if object, ok := branch.Get("a"); !ok || object != 1 {
		t.Fatalf("Expected committed a=1, got %v (present=%v)", object, ok)
	}
}

// TestBranch_Remove covers removal against committed and staged state.
func TestBranch_Remove(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		branch := NewBranch("master", nil)

		if _, ok := branch.Remove("a"); ok {
			t.Fatal("Expected removal on empty history to fail")
		}
		if branch.HasStagedChanges() {
			t.Fatal("Expected nothing staged")
		}
	})

	t.Run("staged only", func(t *testing.T) {
		branch := NewBranch("master", nil)
		branch.Add("a", 1)

		if _, ok := branch.Remove("a"); ok {
			t.Fatal("Expected removal of a staged-only object to fail")
		}
	})

	t.Run("committed", func(t *testing.T) {
		branch := NewBranch("master", nil)
		branch.Add("a", 1)
		branch.Commit("m", testutils.FixedTime())

		object, ok := branch.Remove("a")
		if !ok || object != 1 {
			t.Fatalf("Expected removal to return 1, got %v (present=%v)", object, ok)
		}

		// Removal is staged: the committed value is still visible.
		if _, ok := branch.Get("a"); !ok {
			t.Fatal("Expected a to stay visible until commit")
		}

		commit, changed := branch.Commit("m2", testutils.FixedTime().Add(time.Minute))
		if changed != 1 {
			t.Fatalf("Expected 1 changed object, got %d", changed)
		}
		if _, ok := commit.Object("a"); ok {
			t.Fatal("Expected a to be removed")
		}
	})
}

// TestBranch_DuplicateRemovalsCounted verifies repeated removals of one name each count.
func TestBranch_DuplicateRemovalsCounted(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)
	branch.Commit("m", testutils.FixedTime())

	branch.Remove("a")
	branch.Remove("a")

	_, changed := branch.Commit("m2", testutils.FixedTime().Add(time.Minute))
	if changed != 2 {
		t.Fatalf("Expected duplicate removals to count twice, got %d", changed)
	}
}

// TestBranch_AddAndRemoveCountedTwice verifies a name both added and removed counts twice.
func TestBranch_AddAndRemoveCountedTwice(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)
	branch.Commit("m", testutils.FixedTime())

	branch.Add("a", 2)
	branch.Remove("a")

	commit, changed := branch.Commit("m2", testutils.FixedTime().Add(time.Minute))
	if changed != 2 {
		t.Fatalf("Expected 2 changed objects, got %d", changed)
	}
	if _, ok := commit.Object("a"); ok {
		t.Fatal("Expected removal to win over addition")
	}
}

// TestBranch_CommitClearsStaging verifies the staging area is emptied by a commit.
func TestBranch_CommitClearsStaging(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)

	branch.Commit("m", testutils.FixedTime())

	if branch.HasStagedChanges() {
		t.Fatal("Expected staging area to be empty after commit")
	}
	additions, removals := branch.Staged()
	if len(additions) != 0 || len(removals) != 0 {
		t.Fatalf("Expected empty staging, got %v / %v", additions, removals)
	}
}

// TestBranch_EmptyCommit verifies the branch itself records commits with no changes.
func TestBranch_EmptyCommit(t *testing.T) {
	branch := NewBranch("master", nil)

	commit, changed := branch.Commit("empty", testutils.FixedTime())

	if changed != 0 {
		t.Fatalf("Expected 0 changed objects, got %d", changed)
	}
	if branch.Len() != 1 || commit.Len() != 0 {
		t.Fatalf("Expected one empty commit, got %d commits with %d objects", branch.Len(), commit.Len())
	}
}

// TestBranch_Checkout verifies truncation and the not-found path.
func TestBranch_Checkout(t *testing.T) {
	branch := NewBranch("master", nil)
	start := testutils.FixedTime()

	var commits []*Commit
	for i := range 4 {
		branch.Add("n", i)
		commit, _ := branch.Commit("m", start.Add(time.Duration(i)*time.Minute))
		commits = append(commits, commit)
	}

	if _, ok := branch.Checkout("missing"); ok {
		t.Fatal("Expected checkout of an unknown hash to fail")
	}
	if branch.Len() != 4 {
		t.Fatalf("Expected failed checkout to keep 4 commits, got %d", branch.Len())
	}

	commit, ok := branch.Checkout(commits[1].Hash())
	if !ok || commit != commits[1] {
		t.Fatal("Expected checkout to return the matched commit")
	}
	if branch.Len() != 2 {
		t.Fatalf("Expected 2 commits after checkout, got %d", branch.Len())
	}
	if object, _ := branch.Get("n"); object != 1 {
		t.Fatalf("Expected n=1 after rewind, got %v", object)
	}

	if _, ok := branch.Checkout(commits[3].Hash()); ok {
		t.Fatal("Expected discarded commit to be unreachable")
	}
}

// TestBranch_CheckoutFirstMatchWins verifies colliding hashes resolve to the earliest commit.
func TestBranch_CheckoutFirstMatchWins(t *testing.T) {
	branch := NewBranch("master", nil)
	timestamp := testutils.FixedTime()

	branch.Add("a", 1)
	first, _ := branch.Commit("same", timestamp)
	branch.Add("a", 2)
	second, _ := branch.Commit("same", timestamp)

	if first.Hash() != second.Hash() {
		t.Fatal("Expected colliding hashes")
	}

	commit, ok := branch.Checkout(second.Hash())
	if !ok || commit != first {
		t.Fatal("Expected the earliest matching commit")
	}
	if branch.Len() != 1 {
		t.Fatalf("Expected 1 commit, got %d", branch.Len())
	}
}

// TestBranch_CheckoutKeepsStaging verifies rewinding does not touch the staging area.
func TestBranch_CheckoutKeepsStaging(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)
	commit, _ := branch.Commit("m", testutils.FixedTime())

	branch.Add("b", 2)
	branch.Checkout(commit.Hash())

	if branch.StagedCount() != 1 {
		t.Fatalf("Expected staged change to survive checkout, got %d", branch.StagedCount())
	}
}

// TestBranch_ForkIsIndependent verifies forked histories diverge.
func TestBranch_ForkIsIndependent(t *testing.T) {
	original := NewBranch("master", nil)
	original.Add("a", 1)
	base, _ := original.Commit("base", testutils.FixedTime())
	original.Add("staged", true)

	fork := original.fork("feature")

	if fork.HasStagedChanges() {
		t.Fatal("Expected fork to start with an empty staging area")
	}

	original.Add("b", 2)
	onOriginal, _ := original.Commit("original", testutils.FixedTime().Add(time.Minute))
	fork.Add("c", 3)
	onFork, _ := fork.Commit("fork", testutils.FixedTime().Add(2*time.Minute))

	assertHashes(t, original, base, onOriginal)
	assertHashes(t, fork, base, onFork)

	original.Checkout(base.Hash())
	assertHashes(t, fork, base, onFork)
}

// TestBranch_HistoryReturnsCopy verifies callers cannot rewrite history.
func TestBranch_HistoryReturnsCopy(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)
	commit, _ := branch.Commit("m", testutils.FixedTime())

	history := branch.History()
	history[0] = nil

	if head, _ := branch.Head(); head != commit {
		t.Fatal("Expected history to be unaffected by caller mutation")
	}
}

// TestBranch_Reset verifies staged changes are dropped.
func TestBranch_Reset(t *testing.T) {
	branch := NewBranch("master", nil)
	branch.Add("a", 1)
	branch.Commit("m", testutils.FixedTime())

	branch.Add("b", 2)
	branch.Remove("a")
	branch.Reset()

	if branch.HasStagedChanges() {
		t.Fatal("Expected empty staging area after reset")
	}
}
