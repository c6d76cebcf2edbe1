package workflow

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Status
	}{
		{name: "canonical todo", raw: "todo", want: StatusTodo},
		{name: "to-do", raw: "to-do", want: StatusTodo},
		{name: "backlog", raw: "backlog", want: StatusTodo},
		{name: "pending", raw: "pending", want: StatusTodo},
		{name: "canonical inProgress", raw: "inProgress", want: StatusInProgress},
		{name: "in-progress", raw: "in-progress", want: StatusInProgress},
		{name: "in progress with space", raw: "in progress", want: StatusInProgress},
		{name: "doing", raw: "doing", want: StatusInProgress},
		{name: "progress", raw: "progress", want: StatusInProgress},
		{name: "testing", raw: "testing", want: StatusTesting},
		{name: "test", raw: "test", want: StatusTesting},
		{name: "done", raw: "done", want: StatusCompleted},
		{name: "completed", raw: "completed", want: StatusCompleted},
		{name: "complete", raw: "complete", want: StatusCompleted},
		{name: "finished", raw: "finished", want: StatusCompleted},
		{name: "uppercase", raw: "DONE", want: StatusCompleted},
		{name: "mixed case", raw: "In-Progress", want: StatusInProgress},
		{name: "surrounding whitespace", raw: "  done  ", want: StatusCompleted},
		{name: "empty string falls back", raw: "", want: StatusTodo},
		{name: "unrecognized falls back", raw: "blocked", want: StatusTodo},
		{name: "garbage falls back", raw: "!!!", want: StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	for _, s := range AllStatuses() {
		if got := Normalize(string(s)); got != s {
			t.Errorf("Normalize(%q) = %q, canonical values must map to themselves", s, got)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		if !s.IsValid() {
			t.Errorf("IsValid() = false for canonical status %q", s)
		}
	}
	if Status("done").IsValid() {
		t.Error("IsValid() = true for synonym, only canonical values are valid")
	}
	if Status("").IsValid() {
		t.Error("IsValid() = true for empty status")
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Priority
		wantOK bool
	}{
		{name: "low", raw: "low", want: PriorityLow, wantOK: true},
		{name: "medium", raw: "medium", want: PriorityMedium, wantOK: true},
		{name: "high", raw: "high", want: PriorityHigh, wantOK: true},
		{name: "urgent", raw: "urgent", want: PriorityUrgent, wantOK: true},
		{name: "uppercase", raw: "HIGH", want: PriorityHigh, wantOK: true},
		{name: "whitespace", raw: " urgent ", want: PriorityUrgent, wantOK: true},
		{name: "unrecognized", raw: "critical", want: PriorityMedium, wantOK: false},
		{name: "empty", raw: "", want: PriorityMedium, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePriority(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeProjectStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ProjectStatus
	}{
		{name: "planning", raw: "planning", want: ProjectPlanning},
		{name: "planned", raw: "planned", want: ProjectPlanning},
		{name: "active", raw: "active", want: ProjectActive},
		{name: "started", raw: "started", want: ProjectActive},
		{name: "in-progress maps to active", raw: "in-progress", want: ProjectActive},
		{name: "canonical onHold", raw: "onHold", want: ProjectOnHold},
		{name: "on hold with space", raw: "on hold", want: ProjectOnHold},
		{name: "paused", raw: "paused", want: ProjectOnHold},
		{name: "done", raw: "done", want: ProjectCompleted},
		{name: "finished", raw: "finished", want: ProjectCompleted},
		{name: "empty falls back", raw: "", want: ProjectPlanning},
		{name: "unrecognized falls back", raw: "archived", want: ProjectPlanning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeProjectStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeProjectStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
