package validators

import (
	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
)

func ValidateCreateProject(r *dto.CreateProjectRequest) error {
	result := &errs.ValidationError{}
	checkStruct(r, result)
	if r.Name != "" && !notBlank(r.Name) {
		result.Add("name", "must not be empty")
	}
	return result.OrNil()
}

func ValidateUpdateProject(r *dto.UpdateProjectRequest) error {
	result := &errs.ValidationError{}
	if r.Name != nil && !notBlank(*r.Name) {
		result.Add("name", "must not be empty")
	}
	return result.OrNil()
}
