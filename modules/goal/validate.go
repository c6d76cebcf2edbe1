package goal

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/laibaTLD/logic-camp/domain/validation"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

const maxTitleLength = 200

// validatedGoalCreate is a fully-checked create payload.
type validatedGoalCreate struct {
	Title       string
	Description string
	Status      workflow.Status
	Deadline    *time.Time
	ProjectID   uint
}

// validateCreate checks a create payload, collecting every failing field.
func validateCreate(req CreateGoalRequest) (*validatedGoalCreate, error) {
	var errs validation.Errors

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs.Add("title", "is required")
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs.Add("title", "must be at most %d characters", maxTitleLength)
	}

	var deadline *time.Time
	if req.Deadline != "" {
		d, err := validation.ParseDate(req.Deadline)
		if err != nil {
			errs.Add("deadline", "%v", err)
		} else {
			deadline = &d
		}
	}

	if req.ProjectID == 0 {
		errs.Add("projectId", "must be a positive integer")
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &validatedGoalCreate{
		Title:       title,
		Description: req.Description,
		Status:      workflow.Normalize(req.Status),
		Deadline:    deadline,
		ProjectID:   req.ProjectID,
	}, nil
}

// validateUpdate checks a partial update payload. Only present fields are
// checked; the parsed deadline is returned alongside.
func validateUpdate(req UpdateGoalRequest) (*time.Time, error) {
	var errs validation.Errors

	if req.ID == 0 {
		errs.Add("id", "is required")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			errs.Add("title", "must not be empty")
		} else if utf8.RuneCountInString(title) > maxTitleLength {
			errs.Add("title", "must be at most %d characters", maxTitleLength)
		}
	}

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		d, err := validation.ParseDate(*req.Deadline)
		if err != nil {
			errs.Add("deadline", "%v", err)
		} else {
			deadline = &d
		}
	}

	return deadline, errs.Err()
}
