package validators

import (
	"time"

	"task-management-system.com/task-management-system/internal/constants"
	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
)

const statusOneOf = "oneof=TODO IN_PROGRESS DONE"

type NewTask struct {
	Title       string
	Description *string
	Status      constants.TaskStatus
	Deadline    time.Time
	ProjectID   string
	AssigneeID  *string
}

func ValidateCreateTask(r *dto.CreateTaskRequest) (*NewTask, error) {
	result := &errs.ValidationError{}
	checkStruct(r, result)

	if r.Title != "" && !notBlank(r.Title) {
		result.Add("title", "must not be empty")
	}

	deadline, ok := ParseDeadline(r.Deadline)
	if r.Deadline != "" && !ok {
		result.Add("deadline", "must be a valid ISO-8601 date")
	}

	if err := result.OrNil(); err != nil {
		return nil, err
	}

	assigneeID := r.AssigneeID
	if assigneeID != nil && *assigneeID == "" {
		assigneeID = nil
	}

	status := constants.StatusTodo
	if r.Status != "" {
		status = constants.TaskStatus(r.Status)
	}

	return &NewTask{
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Deadline:    deadline,
		ProjectID:   r.ProjectID,
		AssigneeID:  assigneeID,
	}, nil
}

// TaskChanges holds the validated fields of a partial update. Nil pointers
// and unset nullables mean "leave unchanged".
type TaskChanges struct {
	Title       *string
	Description dto.NullableString
	Status      *constants.TaskStatus
	Deadline    *time.Time
	Assignee    dto.NullableString
}

func (c *TaskChanges) IsEmpty() bool {
	return c.Title == nil &&
		!c.Description.Set &&
		c.Status == nil &&
		c.Deadline == nil &&
		!c.Assignee.Set
}

func ValidateUpdateTask(r *dto.UpdateTaskRequest) (*TaskChanges, error) {
	result := &errs.ValidationError{}
	changes := &TaskChanges{
		Title:       r.Title,
		Description: r.Description,
		Assignee:    r.AssigneeID,
	}

	if r.Title != nil && !notBlank(*r.Title) {
		result.Add("title", "must not be empty")
	}

	if r.Status != nil {
		checkVar("status", *r.Status, "required,"+statusOneOf, result)
		status := constants.TaskStatus(*r.Status)
		changes.Status = &status
	}

	if r.Deadline != nil {
		deadline, ok := ParseDeadline(*r.Deadline)
		if !ok {
			result.Add("deadline", "must be a valid ISO-8601 date")
		}
		changes.Deadline = &deadline
	}

	if r.AssigneeID.Set && !r.AssigneeID.Null {
		checkVar("assigneeId", r.AssigneeID.Value, "required,uuid", result)
	}

	if err := result.OrNil(); err != nil {
		return nil, err
	}
	return changes, nil
}

type TaskFilter struct {
	ProjectID  string
	AssigneeID string
	Status     constants.TaskStatus
	Overdue    bool
}

func ValidateTaskFilter(r *dto.TaskFilterQuery) (*TaskFilter, error) {
	result := &errs.ValidationError{}
	filter := &TaskFilter{
		ProjectID:  r.ProjectID,
		AssigneeID: r.AssigneeID,
	}

	if r.Status != "" {
		checkVar("status", r.Status, statusOneOf, result)
		filter.Status = constants.TaskStatus(r.Status)
	}

	switch r.Overdue {
	case "", "false":
	case "true":
		filter.Overdue = true
	default:
		result.Add("overdue", "must be true or false")
	}

	if err := result.OrNil(); err != nil {
		return nil, err
	}
	return filter, nil
}
