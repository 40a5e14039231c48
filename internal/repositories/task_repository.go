package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "task-management-system.com/task-management-system/internal/errors"
	model "task-management-system.com/task-management-system/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Omit("Project", "Assignee").Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, errs.ErrTaskNotFound)
	}
	return &task, nil
}

func (r *TaskRepository) FindWithRelations(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, errs.ErrTaskNotFound)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, q TaskQuery) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Assignee")

	if q.ProjectID != "" {
		query = query.Where("project_id = ?", q.ProjectID)
	}
	if q.AssigneeID != "" {
		query = query.Where("assignee_id = ?", q.AssigneeID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.ExcludeStatus != "" {
		query = query.Where("status <> ?", q.ExcludeStatus)
	}
	if q.DeadlineBefore != nil {
		query = query.Where("deadline < ?", q.DeadlineBefore.UTC())
	}

	var tasks []model.Task
	if err := query.Order("deadline asc").Order("created_at asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(columns)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrTaskNotFound
	}
	return nil
}
