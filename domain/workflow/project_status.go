package workflow

import "strings"

// ProjectStatus represents the lifecycle state of a project. Projects use a
// vocabulary of their own, separate from the goal/task workflow statuses.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "onHold"
	ProjectCompleted ProjectStatus = "completed"
)

var projectStatusSynonyms = map[string]ProjectStatus{
	"planning": ProjectPlanning,
	"planned":  ProjectPlanning,

	"active":      ProjectActive,
	"in-progress": ProjectActive,
	"in progress": ProjectActive,
	"started":     ProjectActive,

	"onhold":  ProjectOnHold,
	"on-hold": ProjectOnHold,
	"on hold": ProjectOnHold,
	"paused":  ProjectOnHold,

	"completed": ProjectCompleted,
	"complete":  ProjectCompleted,
	"done":      ProjectCompleted,
	"finished":  ProjectCompleted,
}

// NormalizeProjectStatus maps a raw project status string to its canonical
// value, with the same permissive rules as Normalize. Unrecognized input
// falls back to ProjectPlanning.
func NormalizeProjectStatus(raw string) ProjectStatus {
	if s, ok := projectStatusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return ProjectPlanning
}
