// Package workflow defines the canonical status and priority vocabularies
// shared by goals and tasks, and the normalization rules that map the many
// status spellings found in client payloads onto them.
package workflow

import "strings"

// Status represents the workflow state of a goal or task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "inProgress"
	StatusTesting    Status = "testing"
	StatusCompleted  Status = "completed"
)

// statusSynonyms maps recognized status spellings (lowercased, trimmed) to
// their canonical value. Goals and tasks share one vocabulary.
var statusSynonyms = map[string]Status{
	"todo":    StatusTodo,
	"to-do":   StatusTodo,
	"backlog": StatusTodo,
	"pending": StatusTodo,

	"doing":       StatusInProgress,
	"in-progress": StatusInProgress,
	"in progress": StatusInProgress,
	"inprogress":  StatusInProgress,
	"progress":    StatusInProgress,

	"testing": StatusTesting,
	"test":    StatusTesting,

	"done":      StatusCompleted,
	"completed": StatusCompleted,
	"complete":  StatusCompleted,
	"finished":  StatusCompleted,
}

// Normalize maps an arbitrary status string to its canonical value.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized input (including the empty string) falls back to StatusTodo;
// the fallback is a deliberate permissive policy, not an error.
func Normalize(raw string) Status {
	if s, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusTodo
}

// AllStatuses returns the canonical status values.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusTesting, StatusCompleted}
}

// IsValid reports whether s is one of the canonical status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusTesting, StatusCompleted:
		return true
	}
	return false
}
