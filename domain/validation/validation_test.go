package validation

import (
	"testing"
	"time"
)

func TestErrorsAccumulate(t *testing.T) {
	var errs Errors

	if errs.HasErrors() {
		t.Error("HasErrors() = true for fresh Errors")
	}
	if errs.Err() != nil {
		t.Errorf("Err() = %v for fresh Errors, want nil", errs.Err())
	}

	errs.Add("title", "is required")
	errs.Add("goalId", "must be a positive integer")

	if !errs.HasErrors() {
		t.Fatal("HasErrors() = false after Add")
	}

	err := errs.Err()
	if err == nil {
		t.Fatal("Err() = nil after Add")
	}

	want := "validation failed: title is required; goalId must be a positive integer"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorsAddFormats(t *testing.T) {
	var errs Errors
	errs.Add("title", "must be at most %d characters", 200)

	if got := errs.Fields[0].Message; got != "must be at most 200 characters" {
		t.Errorf("Message = %q", got)
	}
}

func TestParseFields(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want []string
	}{
		{
			name: "single field",
			msg:  "validation failed: title is required",
			want: []string{"title is required"},
		},
		{
			name: "multiple fields",
			msg:  "validation failed: title is required; dueDate invalid date",
			want: []string{"title is required", "dueDate invalid date"},
		},
		{
			name: "not a validation error",
			msg:  "task not found",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.msg)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFields(%q) = %v, want %v", tt.msg, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError("validation failed: title is required") {
		t.Error("IsValidationError() = false for validation error")
	}
	if !IsValidationError("create-task service call failed: validation failed: title is required") {
		t.Error("IsValidationError() = false for wrapped validation error")
	}
	if IsValidationError("task not found") {
		t.Error("IsValidationError() = true for non-validation error")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "plain ISO date",
			input: "2026-03-15",
			want:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC 3339 timestamp",
			input: "2026-03-15T10:30:00Z",
			want:  time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{name: "impossible date", input: "2026-02-30", wantErr: true},
		{name: "wrong layout", input: "15/03/2026", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) error = nil, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
