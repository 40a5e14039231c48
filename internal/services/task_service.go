package services

import (
	"context"
	"time"

	"task-management-system.com/task-management-system/internal/constants"
	dto "task-management-system.com/task-management-system/internal/data_models"
	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
	"task-management-system.com/task-management-system/internal/validators"
)

type TaskService struct {
	store repository.EntityStore
	now   func() time.Time
}

func NewTaskService(store repository.EntityStore) *TaskService {
	return &TaskService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateTask validates the request, checks the project and optional
// assignee exist, and inserts the task. The checks and the insert share a
// transaction so a concurrent delete cannot leave a dangling reference.
func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	input, err := validators.ValidateCreateTask(&req)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Deadline:    input.Deadline,
		ProjectID:   input.ProjectID,
		AssigneeID:  input.AssigneeID,
	}

	err = s.store.Transaction(ctx, func(tx repository.EntityStore) error {
		refs := NewReferentialValidator(tx)
		if _, err := refs.EnsureProjectExists(ctx, input.ProjectID); err != nil {
			return err
		}
		if input.AssigneeID != nil {
			if _, err := refs.EnsureUserExists(ctx, *input.AssigneeID); err != nil {
				return err
			}
		}
		return tx.Tasks().Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the tasks matching every supplied filter, soonest
// deadline first, each with its project name and assignee contact.
func (s *TaskService) ListTasks(ctx context.Context, query dto.TaskFilterQuery) ([]dto.TaskListItem, error) {
	filter, err := validators.ValidateTaskFilter(&query)
	if err != nil {
		return nil, err
	}

	tasks, err := s.store.Tasks().List(ctx, s.buildQuery(filter))
	if err != nil {
		return nil, err
	}

	items := make([]dto.TaskListItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, dto.NewTaskListItem(task))
	}
	return items, nil
}

// buildQuery turns a filter into a store predicate. When overdue is set it
// takes precedence over status: the status filter is dropped and replaced
// by "deadline < now AND status != DONE". A request for overdue DONE tasks
// is therefore always empty.
func (s *TaskService) buildQuery(filter *validators.TaskFilter) repository.TaskQuery {
	query := repository.TaskQuery{
		ProjectID:  filter.ProjectID,
		AssigneeID: filter.AssigneeID,
		Status:     filter.Status,
	}

	if filter.Overdue {
		now := s.now()
		query.Status = ""
		query.ExcludeStatus = constants.StatusDone
		query.DeadlineBefore = &now
	}

	return query
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*dto.TaskDetail, error) {
	task, err := s.store.Tasks().FindWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := dto.NewTaskDetail(*task)
	return &detail, nil
}

// UpdateTask applies a partial update. Fields left out of the request are
// untouched; an explicit null assignee clears the assignment, while an
// assignee id is checked before it is stored.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	changes, err := validators.ValidateUpdateTask(&req)
	if err != nil {
		return nil, err
	}

	var updated *model.Task
	err = s.store.Transaction(ctx, func(tx repository.EntityStore) error {
		task, err := tx.Tasks().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if changes.IsEmpty() {
			updated = task
			return nil
		}

		columns, err := s.updateColumns(ctx, NewReferentialValidator(tx), changes)
		if err != nil {
			return err
		}
		if err := tx.Tasks().Update(ctx, id, columns); err != nil {
			return err
		}

		updated, err = tx.Tasks().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) updateColumns(
	ctx context.Context,
	refs *ReferentialValidator,
	changes *validators.TaskChanges,
) (map[string]interface{}, error) {
	columns := make(map[string]interface{})

	if changes.Title != nil {
		columns["title"] = *changes.Title
	}
	if changes.Description.Set {
		columns["description"] = changes.Description.Column()
	}
	if changes.Status != nil {
		columns["status"] = *changes.Status
	}
	if changes.Deadline != nil {
		columns["deadline"] = *changes.Deadline
	}

	if changes.Assignee.Set {
		if changes.Assignee.Null {
			columns["assignee_id"] = nil
		} else {
			if _, err := refs.EnsureUserExists(ctx, changes.Assignee.Value); err != nil {
				return nil, err
			}
			columns["assignee_id"] = changes.Assignee.Value
		}
	}

	return columns, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.store.Tasks().Delete(ctx, id)
}
