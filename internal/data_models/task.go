package dto

import model "task-management-system.com/task-management-system/internal/models"

type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Deadline    string  `json:"deadline" validate:"required"`
	ProjectID   string  `json:"projectId" validate:"required,uuid"`
	AssigneeID  *string `json:"assigneeId" validate:"omitempty,uuid"`
}

// UpdateTaskRequest carries a partial update. Description and AssigneeID
// distinguish an omitted field (no change) from an explicit null (clear).
type UpdateTaskRequest struct {
	Title       *string        `json:"title"`
	Description NullableString `json:"description"`
	Status      *string        `json:"status"`
	Deadline    *string        `json:"deadline"`
	AssigneeID  NullableString `json:"assigneeId"`
}

type TaskFilterQuery struct {
	ProjectID  string `query:"projectId"`
	AssigneeID string `query:"assigneeId"`
	Status     string `query:"status"`
	Overdue    string `query:"overdue"`
}

type ProjectName struct {
	Name string `json:"name"`
}

type AssigneeContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TaskListItem is a task with a lightweight projection of its relations.
type TaskListItem struct {
	model.Task
	Project  *ProjectName     `json:"project,omitempty"`
	Assignee *AssigneeContact `json:"assignee,omitempty"`
}

// TaskDetail is a task with its project and assignee rows embedded in full.
type TaskDetail struct {
	model.Task
	Project  *model.Project `json:"project"`
	Assignee *model.User    `json:"assignee"`
}

func NewTaskListItem(task model.Task) TaskListItem {
	item := TaskListItem{Task: task}
	if task.Project != nil {
		item.Project = &ProjectName{Name: task.Project.Name}
	}
	if task.Assignee != nil {
		item.Assignee = &AssigneeContact{Name: task.Assignee.Name, Email: task.Assignee.Email}
	}
	item.Task.Project = nil
	item.Task.Assignee = nil
	return item
}

func NewTaskDetail(task model.Task) TaskDetail {
	detail := TaskDetail{Task: task, Project: task.Project, Assignee: task.Assignee}
	detail.Task.Project = nil
	detail.Task.Assignee = nil
	return detail
}
