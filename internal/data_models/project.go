package dto

import model "task-management-system.com/task-management-system/internal/models"

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string        `json:"name"`
	Description NullableString `json:"description"`
}

type ProjectDetail struct {
	model.Project
	Tasks []model.Task `json:"tasks"`
}
