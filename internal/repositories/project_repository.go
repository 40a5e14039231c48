package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "task-management-system.com/task-management-system/internal/errors"
	model "task-management-system.com/task-management-system/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		return nil, notFound(err, errs.ErrProjectNotFound)
	}
	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.ProjectWithTaskCount, error) {
	var projects []model.ProjectWithTaskCount
	err := r.db.WithContext(ctx).Model(&model.Project{}).
		Select("projects.*, (SELECT COUNT(*) FROM tasks WHERE tasks.project_id = projects.id) AS task_count").
		Order("projects.created_at asc").
		Scan(&projects).Error
	return projects, err
}

func (r *ProjectRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(columns)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}

// Delete removes the project and every task that belongs to it.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&model.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrProjectNotFound
		}
		return nil
	})
}
