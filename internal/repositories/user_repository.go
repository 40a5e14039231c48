package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "task-management-system.com/task-management-system/internal/errors"
	model "task-management-system.com/task-management-system/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	return duplicateEmail(r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err, errs.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, notFound(err, errs.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]model.UserWithTaskCount, error) {
	var users []model.UserWithTaskCount
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.*, (SELECT COUNT(*) FROM tasks WHERE tasks.assignee_id = users.id) AS task_count").
		Order("users.created_at asc").
		Scan(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, id string, columns map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(columns)

	if res.Error != nil {
		return duplicateEmail(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// Delete removes the user and leaves its tasks unassigned.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Task{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error
		if err != nil {
			return err
		}

		res := tx.Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.ErrUserNotFound
		}
		return nil
	})
}

// duplicateEmail maps a unique index violation to ErrEmailExists. Drivers
// that do not translate errors are matched on their message.
func duplicateEmail(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.ErrEmailExists
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") {
		return errs.ErrEmailExists
	}
	return err
}
