package task

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/laibaTLD/logic-camp/domain/validation"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

const maxTitleLength = 200

// validatedTaskCreate is a fully-checked create payload. Repository code
// only ever sees validated records, never raw request bodies.
type validatedTaskCreate struct {
	Title          string
	Description    string
	Status         workflow.Status
	Priority       workflow.Priority
	DueDate        *time.Time
	EstimatedHours *float64
	GoalID         uint
	CreatedByID    uint
}

// validateCreate checks a create payload against the field constraints,
// collecting every failing field before returning.
func validateCreate(req CreateTaskRequest) (*validatedTaskCreate, error) {
	var errs validation.Errors

	title := strings.TrimSpace(req.Title)
	if title == "" {
		errs.Add("title", "is required")
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs.Add("title", "must be at most %d characters", maxTitleLength)
	}

	priority := workflow.PriorityMedium
	if req.Priority != "" {
		p, ok := workflow.ParsePriority(req.Priority)
		if !ok {
			errs.Add("priority", "must be one of low, medium, high, urgent")
		}
		priority = p
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := validation.ParseDate(req.DueDate)
		if err != nil {
			errs.Add("dueDate", "%v", err)
		} else {
			dueDate = &d
		}
	}

	if req.EstimatedHours != nil && *req.EstimatedHours < 0 {
		errs.Add("estimatedHours", "must be non-negative")
	}

	if req.GoalID == 0 {
		errs.Add("goalId", "must be a positive integer")
	}

	if req.CreatedByID == 0 {
		errs.Add("createdById", "is required")
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &validatedTaskCreate{
		Title:          title,
		Description:    req.Description,
		Status:         workflow.Normalize(req.Status),
		Priority:       priority,
		DueDate:        dueDate,
		EstimatedHours: req.EstimatedHours,
		GoalID:         req.GoalID,
		CreatedByID:    req.CreatedByID,
	}, nil
}

// validateUpdate checks a partial update payload. Only present fields are
// checked; the parsed due date is returned alongside so the service does
// not parse twice.
func validateUpdate(req UpdateTaskRequest) (*time.Time, error) {
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

	if req.Priority != nil {
		if _, ok := workflow.ParsePriority(*req.Priority); !ok {
			errs.Add("priority", "must be one of low, medium, high, urgent")
		}
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := validation.ParseDate(*req.DueDate)
		if err != nil {
			errs.Add("dueDate", "%v", err)
		} else {
			dueDate = &d
		}
	}

	if req.EstimatedHours != nil && *req.EstimatedHours < 0 {
		errs.Add("estimatedHours", "must be non-negative")
	}

	return dueDate, errs.Err()
}
