package project

import (
	"context"
	"log"
	"time"

	"github.com/go-monolith/mono"

	domain "github.com/laibaTLD/logic-camp/domain/project"
	"github.com/laibaTLD/logic-camp/domain/workflow"
)

// createProject handles the create-project service request.
func (m *ProjectModule) createProject(_ context.Context, req CreateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	validated, err := validateCreate(req)
	if err != nil {
		return ProjectResponse{}, err
	}

	created, err := m.repo.Create(&domain.Project{
		Name:        validated.Name,
		Description: validated.Description,
		Status:      validated.Status,
		TeamID:      validated.TeamID,
		StartDate:   validated.StartDate,
		EndDate:     validated.EndDate,
		OwnerID:     validated.OwnerID,
	})
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(created), nil
}

// getProject handles the get-project service request.
func (m *ProjectModule) getProject(_ context.Context, req GetProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	p, err := m.repo.FindByID(req.ProjectID)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(p), nil
}

// updateProject handles the update-project service request.
func (m *ProjectModule) updateProject(_ context.Context, req UpdateProjectRequest, _ *mono.Msg) (ProjectResponse, error) {
	startDate, endDate, err := validateUpdate(req)
	if err != nil {
		return ProjectResponse{}, err
	}

	p, err := m.repo.FindByID(req.ID)
	if err != nil {
		return ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		p.Status = workflow.NormalizeProjectStatus(*req.Status)
	}
	if req.TeamID != nil {
		p.TeamID = req.TeamID
	}
	if req.StartDate != nil {
		p.StartDate = startDate
	}
	if req.EndDate != nil {
		p.EndDate = endDate
	}
	p.UpdatedAt = time.Now()

	updated, err := m.repo.Update(p)
	if err != nil {
		return ProjectResponse{}, err
	}
	return toProjectResponse(updated), nil
}

// deleteProject handles the delete-project service request. The cascade
// removes task rows across every goal in the project, so all of the task
// module's cached lists are dropped rather than resolving each goal.
func (m *ProjectModule) deleteProject(ctx context.Context, req DeleteProjectRequest, _ *mono.Msg) (DeleteProjectResponse, error) {
	if err := m.repo.Delete(req.ProjectID); err != nil {
		return DeleteProjectResponse{Deleted: false}, err
	}
	if m.taskCache != nil {
		if err := m.taskCache.InvalidateCache(ctx, nil); err != nil {
			log.Printf("[project] Warning: failed to invalidate task cache: %v", err)
		}
	}
	return DeleteProjectResponse{Deleted: true}, nil
}

// listProjects handles the list-projects service request.
func (m *ProjectModule) listProjects(_ context.Context, _ ListProjectsRequest, _ *mono.Msg) (ListProjectsResponse, error) {
	projects, err := m.repo.ListAll()
	if err != nil {
		return ListProjectsResponse{}, err
	}

	response := ListProjectsResponse{
		Projects: make([]ProjectResponse, 0, len(projects)),
		Total:    len(projects),
	}
	for _, p := range projects {
		response.Projects = append(response.Projects, toProjectResponse(p))
	}
	return response, nil
}

// toProjectResponse converts a hydrated project entity to its response shape.
func toProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		TeamID:      p.TeamID,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Owner: OwnerSummary{
			ID:    p.Owner.ID,
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
