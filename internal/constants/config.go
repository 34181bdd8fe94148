package constants

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	RunCmdName  = "run"
	HashCmdName = "hash"
)

// Default store values.
const (
	// DefaultBranch is the branch every new store starts with.
	DefaultBranch = "master"

	// HeadMarker prefixes the current branch in branch listings.
	HeadMarker = "* "

	// BranchIndent prefixes every other branch in branch listings.
	BranchIndent = "  "
)

// Commit hash and timestamp properties.
const (
	// TimestampLayout formats commit timestamps, e.g. "Sat Oct 18 14:05 2026 +0200".
	// Minute resolution: two commits with the same message in the same minute share a hash.
	TimestampLayout = "Mon Jan 02 15:04 2006 -0700"

	// HashStringLength is hex string length of SHA-1 hash (40 characters).
	HashStringLength = 40
)

// Log rendering.
const (
	// LogEntrySeparator joins rendered commits in the log.
	LogEntrySeparator = "\n\n"

	// LogCommitPrefix starts every rendered commit.
	LogCommitPrefix = "Commit "

	// LogDatePrefix starts the date line of a rendered commit.
	LogDatePrefix = "Date: "
)

// Script language.
const (
	// ScriptCommentPrefix marks a script line that is skipped.
	ScriptCommentPrefix = "#"
)
