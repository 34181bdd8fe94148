package utils

import (
	"crypto/sha1"
	"fmt"
	"time"

	"github.com/KostasZigo/gostore/internal/constants"
)

// FormatTimestamp renders a commit timestamp the way it is shown in logs
// and fed into the commit hash.
func FormatTimestamp(timestamp time.Time) string {
	return timestamp.Format(constants.TimestampLayout)
}

// ComputeCommitHash calculates the SHA-1 identity of a commit.
// format: sha1("<formatted timestamp><message>")
// Object contents do not take part in the hash.
func ComputeCommitHash(timestamp time.Time, message string) string {
	hash := sha1.Sum([]byte(FormatTimestamp(timestamp) + message))
	return fmt.Sprintf("%x", hash)
}
