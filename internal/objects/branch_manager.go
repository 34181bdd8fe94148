package objects

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/KostasZigo/gostore/internal/constants"
	"github.com/KostasZigo/gostore/internal/result"
)

// BranchManager creates, switches, removes and lists the branches of the
// store it was obtained from. Successful results carry the branch name.
type BranchManager struct {
	store *ObjectStore
}

// Create forks the head branch under a new name. The new branch starts
// with the head branch's commits at this instant and an empty staging area.
func (m *BranchManager) Create(name string) result.Result[string] {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if name == "" {
		return invalidBranchName()
	}
	if _, exists := m.store.branches[name]; exists {
		return result.Fail[string](result.KindAlreadyExists, fmt.Sprintf("Branch %s already exists.", name))
	}

	m.store.branches[name] = m.store.headBranch().fork(name)

	slog.Debug("Created branch",
		"branch", name,
		"from", m.store.head)

	return result.OK(fmt.Sprintf("Created branch %s.", name), name)
}

// Checkout makes name the head branch. Staging areas are left as they are.
func (m *BranchManager) Checkout(name string) result.Result[string] {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if _, exists := m.store.branches[name]; !exists {
		return branchNotFound(name)
	}

	m.store.head = name
	return result.OK(fmt.Sprintf("Switched to branch %s.", name), name)
}

// Remove deletes a branch other than the head branch, dropping its staged
// changes and its references to commits.
func (m *BranchManager) Remove(name string) result.Result[string] {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if name == m.store.head {
		return result.Fail[string](result.KindCannotRemoveCurrent, "Cannot remove current branch.")
	}
	if _, exists := m.store.branches[name]; !exists {
		return branchNotFound(name)
	}

	delete(m.store.branches, name)

	slog.Debug("Removed branch",
		"branch", name)

	return result.OK(fmt.Sprintf("Removed branch %s.", name), name)
}

// List reports every branch in ascending order, one per line, marking the
// head branch with "* ". The payload holds the sorted names.
func (m *BranchManager) List() result.Result[[]string] {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	names := slices.Sorted(maps.Keys(m.store.branches))

	lines := make([]string, len(names))
	for i, name := range names {
		prefix := constants.BranchIndent
		if name == m.store.head {
			prefix = constants.HeadMarker
		}
		lines[i] = prefix + name
	}

	return result.OK(strings.Join(lines, "\n"), names)
}

func branchNotFound(name string) result.Result[string] {
	return result.Fail[string](result.KindNotFound, fmt.Sprintf("Branch %s does not exist.", name))
}

func invalidBranchName() result.Result[string] {
	return result.Fail[string](result.KindInvalidName, "Branch name must not be empty.")
}
