package project

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// projectAdapter implements ProjectPort over the module's service container.
type projectAdapter struct {
	container mono.ServiceContainer
}

// NewProjectAdapter creates an adapter for the project services.
func NewProjectAdapter(container mono.ServiceContainer) ProjectPort {
	if container == nil {
		panic("project adapter requires non-nil ServiceContainer")
	}
	return &projectAdapter{container: container}
}

// CreateProject creates a new project via the create-project service.
func (a *projectAdapter) CreateProject(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error) {
	var resp ProjectResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "create-project", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("create-project service call failed: %w", err)
	}
	return &resp, nil
}

// GetProject retrieves a project by ID via the get-project service.
func (a *projectAdapter) GetProject(ctx context.Context, projectID uint) (*ProjectResponse, error) {
	req := GetProjectRequest{ProjectID: projectID}
	var resp ProjectResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-project", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-project service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateProject updates a project via the update-project service.
func (a *projectAdapter) UpdateProject(ctx context.Context, req *UpdateProjectRequest) (*ProjectResponse, error) {
	var resp ProjectResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-project", json.Marshal, json.Unmarshal, req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-project service call failed: %w", err)
	}
	return &resp, nil
}

// DeleteProject deletes a project via the delete-project service.
func (a *projectAdapter) DeleteProject(ctx context.Context, projectID uint) error {
	req := DeleteProjectRequest{ProjectID: projectID}
	var resp DeleteProjectResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "delete-project", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return fmt.Errorf("delete-project service call failed: %w", err)
	}
	if !resp.Deleted {
		return fmt.Errorf("project not deleted: %d", projectID)
	}
	return nil
}

// ListProjects lists all projects via the list-projects service.
func (a *projectAdapter) ListProjects(ctx context.Context) (*ListProjectsResponse, error) {
	req := ListProjectsRequest{}
	var resp ListProjectsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-projects", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-projects service call failed: %w", err)
	}
	return &resp, nil
}
