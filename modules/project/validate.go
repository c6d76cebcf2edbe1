package project

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/laibaTLD/logic-camp/domain/validation"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

const maxNameLength = 200

// validatedProjectCreate is a fully-checked create payload.
type validatedProjectCreate struct {
	Name        string
	Description string
	Status      workflow.ProjectStatus
	TeamID      *uint
	StartDate   *time.Time
	EndDate     *time.Time
	OwnerID     uint
}

// validateCreate checks a create payload, collecting every failing field.
func validateCreate(req CreateProjectRequest) (*validatedProjectCreate, error) {
	var errs validation.Errors

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.Add("name", "is required")
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs.Add("name", "must be at most %d characters", maxNameLength)
	}

	startDate := parseOptionalDate(&errs, "startDate", req.StartDate)
	endDate := parseOptionalDate(&errs, "endDate", req.EndDate)

	if req.OwnerID == 0 {
		errs.Add("ownerId", "is required")
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}

	return &validatedProjectCreate{
		Name:        name,
		Description: req.Description,
		Status:      workflow.NormalizeProjectStatus(req.Status),
		TeamID:      req.TeamID,
		StartDate:   startDate,
		EndDate:     endDate,
		OwnerID:     req.OwnerID,
	}, nil
}

// validateUpdate checks a partial update payload, returning the parsed dates.
func validateUpdate(req UpdateProjectRequest) (startDate, endDate *time.Time, err error) {
	var errs validation.Errors

	if req.ID == 0 {
		errs.Add("id", "is required")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs.Add("name", "must not be empty")
		} else if utf8.RuneCountInString(name) > maxNameLength {
			errs.Add("name", "must be at most %d characters", maxNameLength)
		}
	}

	if req.StartDate != nil {
		startDate = parseOptionalDate(&errs, "startDate", *req.StartDate)
	}
	if req.EndDate != nil {
		endDate = parseOptionalDate(&errs, "endDate", *req.EndDate)
	}

	return startDate, endDate, errs.Err()
}

func parseOptionalDate(errs *validation.Errors, field, value string) *time.Time {
	if value == "" {
		return nil
	}
	d, err := validation.ParseDate(value)
	if err != nil {
		errs.Add(field, "%v", err)
		return nil
	}
	return &d
}
