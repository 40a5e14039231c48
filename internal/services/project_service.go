package services

import (
	"context"

	dto "task-management-system.com/task-management-system/internal/data_models"
	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
	"task-management-system.com/task-management-system/internal/validators"
)

type ProjectService struct {
	store repository.EntityStore
}

func NewProjectService(store repository.EntityStore) *ProjectService {
	return &ProjectService{store: store}
}

func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*model.Project, error) {
	if err := validators.ValidateCreateProject(&req); err != nil {
		return nil, err
	}

	project := &model.Project{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.store.Projects().Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.ProjectWithTaskCount, error) {
	return s.store.Projects().List(ctx)
}

// GetProject returns the project with its tasks, soonest deadline first.
func (s *ProjectService) GetProject(ctx context.Context, id string) (*dto.ProjectDetail, error) {
	project, err := s.store.Projects().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks().List(ctx, repository.TaskQuery{ProjectID: id})
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Project = nil
		tasks[i].Assignee = nil
	}

	return &dto.ProjectDetail{Project: *project, Tasks: tasks}, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*model.Project, error) {
	if err := validators.ValidateUpdateProject(&req); err != nil {
		return nil, err
	}

	columns := make(map[string]interface{})
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Description.Set {
		columns["description"] = req.Description.Column()
	}

	var updated *model.Project
	err := s.store.Transaction(ctx, func(tx repository.EntityStore) error {
		if len(columns) > 0 {
			if err := tx.Projects().Update(ctx, id, columns); err != nil {
				return err
			}
		}
		var err error
		updated, err = tx.Projects().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteProject removes the project together with all of its tasks.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.store.Projects().Delete(ctx, id)
}
