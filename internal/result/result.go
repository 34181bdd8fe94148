// Package result defines the uniform outcome returned by every store
// operation: a status, a human-readable message and an optional payload.
//
// A Result is one of three variants. StatusOK carries the operation's
// payload. StatusNoOp reports that nothing happened although nothing went
// wrong (committing a clean staging area). StatusError reports a failure
// of a given Kind. Both NoOp and Error report Success() == false, so code
// that only looks at the boolean flag sees the same behaviour either way.
package result

// Status is the variant tag of a Result.
type Status int

const (
	StatusOK Status = iota
	StatusNoOp
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the immutable outcome of a store operation.
type Result[T any] struct {
	status     Status
	kind       Kind
	message    string
	payload    T
	hasPayload bool
}

// OK returns a successful Result carrying payload.
func OK[T any](message string, payload T) Result[T] {
	return Result[T]{
		status:     StatusOK,
		message:    message,
		payload:    payload,
		hasPayload: true,
	}
}

// Done returns a successful Result without a payload.
func Done[T any](message string) Result[T] {
	return Result[T]{status: StatusOK, message: message}
}

// NoOp returns an unsuccessful, non-failing Result.
func NoOp[T any](kind Kind, message string) Result[T] {
	return Result[T]{status: StatusNoOp, kind: kind, message: message}
}

// Fail returns a failed Result of the given kind.
func Fail[T any](kind Kind, message string) Result[T] {
	return Result[T]{status: StatusError, kind: kind, message: message}
}

// Status returns the variant tag.
func (r Result[T]) Status() Status {
	return r.status
}

// Success reports whether the operation took effect.
func (r Result[T]) Success() bool {
	return r.status == StatusOK
}

// IsError is the negation of Success. It is true for NoOp results too.
func (r Result[T]) IsError() bool {
	return r.status != StatusOK
}

// IsNoOp reports whether the operation was a harmless no-op.
func (r Result[T]) IsNoOp() bool {
	return r.status == StatusNoOp
}

// Kind returns why the operation did not succeed, KindNone on success.
func (r Result[T]) Kind() Kind {
	return r.kind
}

// Message returns the human-readable message.
func (r Result[T]) Message() string {
	return r.message
}

// Payload returns the carried value and whether there is one.
func (r Result[T]) Payload() (T, bool) {
	return r.payload, r.hasPayload
}

// Err returns nil on success, otherwise an *Error wrapping the kind's sentinel.
func (r Result[T]) Err() error {
	if r.status == StatusOK {
		return nil
	}
	return &Error{Kind: r.kind, Message: r.message}
}

// String returns the message so a Result prints the way users read it.
func (r Result[T]) String() string {
	return r.message
}
