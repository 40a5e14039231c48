package validators

import (
	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
)

func ValidateCreateUser(r *dto.CreateUserRequest) error {
	result := &errs.ValidationError{}
	checkStruct(r, result)
	if r.Name != "" && !notBlank(r.Name) {
		result.Add("name", "must not be empty")
	}
	return result.OrNil()
}

func ValidateUpdateUser(r *dto.UpdateUserRequest) error {
	result := &errs.ValidationError{}
	if r.Name != nil && !notBlank(*r.Name) {
		result.Add("name", "must not be empty")
	}
	if r.Email != nil {
		checkVar("email", *r.Email, "required,email", result)
	}
	return result.OrNil()
}
