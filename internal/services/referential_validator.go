package services

import (
	"context"

	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
)

// ReferentialValidator confirms that rows a task wants to point at exist.
// Every call goes to the store; results are never cached.
type ReferentialValidator struct {
	store repository.EntityStore
}

func NewReferentialValidator(store repository.EntityStore) *ReferentialValidator {
	return &ReferentialValidator{store: store}
}

func (v *ReferentialValidator) EnsureProjectExists(ctx context.Context, id string) (*model.Project, error) {
	return v.store.Projects().FindByID(ctx, id)
}

func (v *ReferentialValidator) EnsureUserExists(ctx context.Context, id string) (*model.User, error) {
	return v.store.Users().FindByID(ctx, id)
}
