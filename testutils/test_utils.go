package testutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KostasZigo/gostore/internal/clock"
	"github.com/KostasZigo/gostore/internal/result"
)

// FixedTime is the instant fake clocks start at in tests.
func FixedTime() time.Time {
	return time.Date(2026, time.October, 18, 14, 5, 0, 0, time.UTC)
}

// NewFakeClock returns a fake clock standing at FixedTime.
func NewFakeClock() *clock.FakeClock {
	return clock.Fake(FixedTime())
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// AssertSuccess checks that r succeeded and returns its payload.
// Fails the test immediately otherwise.
func AssertSuccess[T any](t *testing.T, r result.Result[T]) T {
	t.Helper()

	if !r.Success() {
		t.Fatalf("Expected success, got %s (%s): %s", r.Status(), r.Kind(), r.Message())
	}

	payload, _ := r.Payload()
	return payload
}

// AssertFailure checks that r failed with the given kind and carries no payload.
func AssertFailure[T any](t *testing.T, r result.Result[T], kind result.Kind) {
	t.Helper()

	if r.Success() {
		t.Fatalf("Expected failure of kind %s, got success: %s", kind, r.Message())
	}
	if r.Kind() != kind {
		t.Fatalf("Expected kind %s, got %s: %s", kind, r.Kind(), r.Message())
	}
	if !errors.Is(r.Err(), kind.Sentinel()) {
		t.Fatalf("Expected error to wrap %v, got %v", kind.Sentinel(), r.Err())
	}
	if _, ok := r.Payload(); ok {
		t.Fatalf("Expected no payload on failure: %s", r.Message())
	}
}

// AssertMessage checks the message of r.
func AssertMessage[T any](t *testing.T, r result.Result[T], expected string) {
	t.Helper()

	if r.Message() != expected {
		t.Errorf("Expected message [%s], got [%s]", expected, r.Message())
	}
}
