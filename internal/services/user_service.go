package services

import (
	"context"

	dto "task-management-system.com/task-management-system/internal/data_models"
	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
	"task-management-system.com/task-management-system/internal/validators"
)

type UserService struct {
	store repository.EntityStore
}

func NewUserService(store repository.EntityStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	if err := validators.ValidateCreateUser(&req); err != nil {
		return nil, err
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.UserWithTaskCount, error) {
	return s.store.Users().List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.store.Users().FindByID(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.store.Users().FindByEmail(ctx, email)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*model.User, error) {
	if err := validators.ValidateUpdateUser(&req); err != nil {
		return nil, err
	}

	columns := make(map[string]interface{})
	if req.Name != nil {
		columns["name"] = *req.Name
	}
	if req.Email != nil {
		columns["email"] = *req.Email
	}

	var updated *model.User
	err := s.store.Transaction(ctx, func(tx repository.EntityStore) error {
		if len(columns) > 0 {
			if err := tx.Users().Update(ctx, id, columns); err != nil {
				return err
			}
		}
		var err error
		updated, err = tx.Users().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteUser removes the user; tasks assigned to it become unassigned.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.store.Users().Delete(ctx, id)
}
