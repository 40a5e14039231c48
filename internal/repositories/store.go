package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"task-management-system.com/task-management-system/internal/constants"
	model "task-management-system.com/task-management-system/internal/models"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.UserWithTaskCount, error)
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type ProjectStore interface {
	Create(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]model.ProjectWithTaskCount, error)
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// TaskQuery is a conjunction of optional predicates. Zero values are ignored.
type TaskQuery struct {
	ProjectID      string
	AssigneeID     string
	Status         constants.TaskStatus
	ExcludeStatus  constants.TaskStatus
	DeadlineBefore *time.Time
}

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id string) (*model.Task, error)
	FindWithRelations(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context, query TaskQuery) ([]model.Task, error)
	Update(ctx context.Context, id string, columns map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

// EntityStore is the relational data-access boundary consumed by services.
type EntityStore interface {
	Users() UserStore
	Projects() ProjectStore
	Tasks() TaskStore

	// Transaction runs fn against a store bound to a single transaction.
	// Returning an error from fn rolls back.
	Transaction(ctx context.Context, fn func(tx EntityStore) error) error
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() UserStore {
	return NewUserRepository(s.db)
}

func (s *Store) Projects() ProjectStore {
	return NewProjectRepository(s.db)
}

func (s *Store) Tasks() TaskStore {
	return NewTaskRepository(s.db)
}

func (s *Store) Transaction(ctx context.Context, fn func(tx EntityStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// notFound maps gorm's missing-row error to the entity specific one.
func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
