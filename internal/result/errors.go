package result

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation did not succeed.
type Kind string

const (
	KindNone                Kind = ""
	KindNotCommitted        Kind = "not-committed"
	KindNotFound            Kind = "not-found"
	KindAlreadyExists       Kind = "already-exists"
	KindCannotRemoveCurrent Kind = "cannot-remove-current"
	KindNoCommits           Kind = "no-commits"
	KindNothingToCommit     Kind = "nothing-to-commit"
	KindInvalidName         Kind = "invalid-name"
)

// Sentinel errors that can be used with errors.Is() on Result.Err().
var (
	// ErrNotCommitted indicates the name is absent from the head branch's last commit
	ErrNotCommitted = errors.New("object is not committed")

	// ErrNotFound indicates an unknown commit hash or branch name
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a branch name is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrCannotRemoveCurrent indicates an attempt to delete the head branch
	ErrCannotRemoveCurrent = errors.New("cannot remove current branch")

	// ErrNoCommits indicates the head branch has an empty history
	ErrNoCommits = errors.New("branch has no commits")

	// ErrNothingToCommit indicates a commit with an empty staging area
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrInvalidName indicates an empty or otherwise unusable name
	ErrInvalidName = errors.New("invalid name")
)

var sentinels = map[Kind]error{
	KindNotCommitted:        ErrNotCommitted,
	KindNotFound:            ErrNotFound,
	KindAlreadyExists:       ErrAlreadyExists,
	KindCannotRemoveCurrent: ErrCannotRemoveCurrent,
	KindNoCommits:           ErrNoCommits,
	KindNothingToCommit:     ErrNothingToCommit,
	KindInvalidName:         ErrInvalidName,
}

// Sentinel returns the sentinel error for the kind, or nil for KindNone.
func (k Kind) Sentinel() error {
	return sentinels[k]
}

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}

// Error carries the user-facing message of an unsuccessful Result
// together with its kind.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the kind's sentinel for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind.Sentinel()
}
