package project

import (
	"context"
	"time"
)

// CreateProjectRequest is the request for creating a project. OwnerID is
// set by the API layer from the authenticated principal.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	TeamID      *uint  `json:"teamId,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	OwnerID     uint   `json:"ownerId"`
}

// GetProjectRequest is the request for getting a project.
type GetProjectRequest struct {
	ProjectID uint `json:"project_id"`
}

// UpdateProjectRequest is the request for updating a project. Every field
// except ID is optional.
type UpdateProjectRequest struct {
	ID          uint    `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	TeamID      *uint   `json:"teamId,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
}

// DeleteProjectRequest is the request for deleting a project.
type DeleteProjectRequest struct {
	ProjectID uint `json:"project_id"`
}

// DeleteProjectResponse is the response for deleting a project.
type DeleteProjectResponse struct {
	Deleted bool `json:"deleted"`
}

// ListProjectsRequest is the request for listing projects.
type ListProjectsRequest struct{}

// ListProjectsResponse is the response for listing projects.
type ListProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

// OwnerSummary is the hydrated owner reference embedded in project responses.
type OwnerSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectResponse is the hydrated project returned to callers.
type ProjectResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	TeamID      *uint        `json:"teamId"`
	StartDate   *time.Time   `json:"startDate"`
	EndDate     *time.Time   `json:"endDate"`
	Owner       OwnerSummary `json:"owner"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ProjectPort defines the interface the API module uses to reach project services.
type ProjectPort interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error)
	GetProject(ctx context.Context, projectID uint) (*ProjectResponse, error)
	UpdateProject(ctx context.Context, req *UpdateProjectRequest) (*ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uint) error
	ListProjects(ctx context.Context) (*ListProjectsResponse, error)
}
