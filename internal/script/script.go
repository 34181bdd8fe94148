// Package script runs line-oriented commands against an object store and
// prints one result per command.
//
//	add greeting hello world
//	commit First commit
//	branch create feature
//	branch checkout feature
//	get greeting
//
// Values given to add are decoded as YAML scalars or flow collections, so
// "42" is an int, "true" a bool and "[1, 2]" a list. Blank lines and lines
// starting with "#" are skipped.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/KostasZigo/gostore/internal/constants"
	"github.com/KostasZigo/gostore/internal/objects"
	"github.com/KostasZigo/gostore/internal/result"
	"gopkg.in/yaml.v3"
)

// ErrCommandFailed is returned in strict mode when a command does not succeed.
var ErrCommandFailed = errors.New("command did not succeed")

// ParseError reports a malformed script line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Outcome is the printable result of one command.
type Outcome struct {
	Success bool
	Output  string
}

// Summary counts what a run did.
type Summary struct {
	Executed int
	Failed   int
}

// Runner executes scripts against one store.
type Runner struct {
	store  *objects.ObjectStore
	strict bool
}

// NewRunner returns a Runner for store. In strict mode Run stops at the
// first command that does not succeed.
func NewRunner(store *objects.ObjectStore, strict bool) *Runner {
	return &Runner{store: store, strict: strict}
}

// Run executes every line of in and writes each command's output to out.
// Malformed lines abort the run with a *ParseError.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, constants.ScriptCommentPrefix) {
			continue
		}

		outcome, err := r.Execute(line)
		if err != nil {
			return summary, &ParseError{Line: lineNumber, Text: line, Err: err}
		}

		summary.Executed++
		if _, err := fmt.Fprintln(out, outcome.Output); err != nil {
			return summary, fmt.Errorf("failed to write output: %w", err)
		}

		if !outcome.Success {
			summary.Failed++
			slog.Debug("Command did not succeed",
				"line", lineNumber,
				"command", line)

			if r.strict {
				return summary, fmt.Errorf("line %d: %w", lineNumber, ErrCommandFailed)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read script: %w", err)
	}

	return summary, nil
}

// Execute runs a single command line.
func (r *Runner) Execute(line string) (Outcome, error) {
	command, rest := splitWord(line)

	switch command {
	case "add":
		name, raw := splitWord(rest)
		if name == "" || raw == "" {
			return Outcome{}, errors.New("usage: add <name> <value>")
		}
		value, err := DecodeValue(raw)
		if err != nil {
			return Outcome{}, err
		}
		return outcomeOf(r.store.Add(name, value)), nil

	case "remove":
		name, err := singleArg(rest, "usage: remove <name>")
		if err != nil {
			return Outcome{}, err
		}
		return outcomeOf(r.store.Remove(name)), nil

	case "commit":
		if rest == "" {
			return Outcome{}, errors.New("usage: commit <message>")
		}
		return outcomeOf(r.store.Commit(rest)), nil

	case "checkout":
		hash, err := singleArg(rest, "usage: checkout <hash>")
		if err != nil {
			return Outcome{}, err
		}
		return outcomeOf(r.store.Checkout(hash)), nil

	case "get":
		name, err := singleArg(rest, "usage: get <name>")
		if err != nil {
			return Outcome{}, err
		}
		res := r.store.Get(name)
		outcome := outcomeOf(res)
		if value, ok := res.Payload(); ok {
			outcome.Output += fmt.Sprintf("\n\t%v", value)
		}
		return outcome, nil

	case "log":
		if rest != "" {
			return Outcome{}, errors.New("usage: log")
		}
		return outcomeOf(r.store.Log()), nil

	case "head":
		if rest != "" {
			return Outcome{}, errors.New("usage: head")
		}
		res := r.store.Head()
		outcome := outcomeOf(res)
		if commit, ok := res.Payload(); ok {
			outcome.Output = commit.Hash() + " " + commit.Message()
		}
		return outcome, nil

	case "status":
		if rest != "" {
			return Outcome{}, errors.New("usage: status")
		}
		return r.status(), nil

	case "reset":
		if rest != "" {
			return Outcome{}, errors.New("usage: reset")
		}
		return outcomeOf(r.store.Reset()), nil

	case "branch":
		return r.branch(rest)

	default:
		return Outcome{}, fmt.Errorf("unknown command %q", command)
	}
}

func (r *Runner) branch(args string) (Outcome, error) {
	action, rest := splitWord(args)
	manager := r.store.Branch()

	if action == "list" {
		if rest != "" {
			return Outcome{}, errors.New("usage: branch list")
		}
		return outcomeOf(manager.List()), nil
	}

	name, err := singleArg(rest, "usage: branch create|checkout|remove <name>")
	if err != nil {
		return Outcome{}, err
	}

	switch action {
	case "create":
		return outcomeOf(manager.Create(name)), nil
	case "checkout":
		return outcomeOf(manager.Checkout(name)), nil
	case "remove":
		return outcomeOf(manager.Remove(name)), nil
	default:
		return Outcome{}, fmt.Errorf("unknown branch action %q", action)
	}
}

// status renders the head branch's staging area:
//
//	On branch master
//	  added: a
//	  removed: b
func (r *Runner) status() Outcome {
	additions, removals := r.store.Staged()

	var b strings.Builder
	fmt.Fprintf(&b, "On branch %s", r.store.HeadBranch())
	if len(additions) == 0 && len(removals) == 0 {
		b.WriteString("\nNothing staged.")
	}
	for _, name := range slices.Sorted(maps.Keys(additions)) {
		fmt.Fprintf(&b, "\n  added: %s", name)
	}
	for _, name := range removals {
		fmt.Fprintf(&b, "\n  removed: %s", name)
	}

	return Outcome{Success: true, Output: b.String()}
}

// DecodeValue decodes a raw script value as YAML.
func DecodeValue(raw string) (any, error) {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", raw, err)
	}
	if value == nil {
		return nil, fmt.Errorf("invalid value %q: null is not storable", raw)
	}
	return value, nil
}

func outcomeOf[T any](r result.Result[T]) Outcome {
	return Outcome{Success: r.Success(), Output: r.Message()}
}

// splitWord splits off the first whitespace-separated word.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i == -1 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func singleArg(args, usage string) (string, error) {
	if args == "" || strings.IndexFunc(args, unicode.IsSpace) != -1 {
		return "", errors.New(usage)
	}
	return args, nil
}
