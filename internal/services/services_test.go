package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	config "task-management-system.com/task-management-system/internal/configs"
	"task-management-system.com/task-management-system/internal/constants"
	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.NewDatabase("sqlite", dsn, "silent")
	require.NoError(t, err, "failed to connect database")
	require.NoError(t, config.Migrate(db), "failed to migrate database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

type fixture struct {
	db        *gorm.DB
	store     *repository.Store
	tasks     *TaskService
	projects  *ProjectService
	users     *UserService
	dashboard *DashboardService
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	store := repository.NewStore(db)
	return &fixture{
		db:        db,
		store:     store,
		tasks:     NewTaskService(store),
		projects:  NewProjectService(store),
		users:     NewUserService(store),
		dashboard: NewDashboardService(store, constants.DefaultDueSoonDays),
	}
}

func (f *fixture) project(t *testing.T, name string) *model.Project {
	t.Helper()
	p, err := f.projects.CreateProject(context.Background(), dto.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

func (f *fixture) user(t *testing.T, name string) *model.User {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), dto.CreateUserRequest{
		Name:  name,
		Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) task(t *testing.T, title, projectID string, deadline time.Time, assigneeID *string) *model.Task {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), dto.CreateTaskRequest{
		Title:      title,
		Deadline:   deadline.UTC().Format(time.RFC3339),
		ProjectID:  projectID,
		AssigneeID: assigneeID,
	})
	require.NoError(t, err)
	return task
}

func (f *fixture) taskCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.Task{}).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }

func titles(items []dto.TaskListItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestTaskService_CreateAndGetRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	project := f.project(t, "Website Redesign")
	alice := f.user(t, "alice")

	created, err := f.tasks.CreateTask(ctx, dto.CreateTaskRequest{
		Title:       "Implement Login",
		Description: strPtr("Create authentication flow"),
		Status:      "IN_PROGRESS",
		Deadline:    "2026-01-31T23:59:59Z",
		ProjectID:   project.ID,
		AssigneeID:  &alice.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	fetched, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Implement Login", fetched.Title)
	require.NotNil(t, fetched.Description)
	assert.Equal(t, "Create authentication flow", *fetched.Description)
	assert.Equal(t, constants.StatusInProgress, fetched.Status)
	assert.True(t, time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC).Equal(fetched.Deadline))
	assert.Equal(t, project.ID, fetched.ProjectID)
	require.NotNil(t, fetched.AssigneeID)
	assert.Equal(t, alice.ID, *fetched.AssigneeID)

	require.NotNil(t, fetched.Project)
	assert.Equal(t, "Website Redesign", fetched.Project.Name)
	require.NotNil(t, fetched.Assignee)
	assert.Equal(t, alice.Email, fetched.Assignee.Email)
}

func TestTaskService_CreateDefaultsToTodo(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "P")

	task := f.task(t, "Default status", project.ID, time.Now().Add(time.Hour), nil)

	assert.Equal(t, constants.StatusTodo, task.Status)
	assert.Nil(t, task.AssigneeID)
}

func TestTaskService_CreateWithMissingProject(t *testing.T) {
	f := newFixture(t)

	_, err := f.tasks.CreateTask(context.Background(), dto.CreateTaskRequest{
		Title:     "Orphan",
		Deadline:  "2026-01-31T00:00:00Z",
		ProjectID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	assert.True(t, errs.IsNotFound(err))
	assert.Zero(t, f.taskCount(t))
}

func TestTaskService_CreateWithMissingAssignee(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "P")
	ghost := uuid.NewString()

	_, err := f.tasks.CreateTask(context.Background(), dto.CreateTaskRequest{
		Title:      "Nobody's",
		Deadline:   "2026-01-31T00:00:00Z",
		ProjectID:  project.ID,
		AssigneeID: &ghost,
	})

	assert.ErrorIs(t, err, errs.ErrUserNotFound)
	assert.Zero(t, f.taskCount(t))
}

func TestTaskService_CreateRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	project := f.project(t, "P")

	_, err := f.tasks.CreateTask(context.Background(), dto.CreateTaskRequest{
		Title:     "",
		Deadline:  "someday",
		ProjectID: project.ID,
	})

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 2)
	assert.Zero(t, f.taskCount(t))
}

func TestTaskService_ListOverdueScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	p := f.project(t, "P")
	other := f.project(t, "Other")
	f.task(t, "A", p.ID, now.Add(-24*time.Hour), nil)
	f.task(t, "B", p.ID, now.Add(5*24*time.Hour), nil)
	f.task(t, "C", other.ID, now.Add(-24*time.Hour), nil)

	items, err := f.tasks.ListTasks(ctx, dto.TaskFilterQuery{ProjectID: p.ID, Overdue: "true"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, titles(items))
}

func TestTaskService_ListOverdueOverridesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	p := f.project(t, "P")
	done := f.task(t, "Done late", p.ID, now.Add(-48*time.Hour), nil)
	_, err := f.tasks.UpdateTask(ctx, done.ID, dto.UpdateTaskRequest{Status: strPtr("DONE")})
	require.NoError(t, err)

	inProgress := f.task(t, "In progress late", p.ID, now.Add(-24*time.Hour), nil)
	_, err = f.tasks.UpdateTask(ctx, inProgress.ID, dto.UpdateTaskRequest{Status: strPtr("IN_PROGRESS")})
	require.NoError(t, err)

	f.task(t, "Todo late", p.ID, now.Add(-12*time.Hour), nil)

	items, err := f.tasks.ListTasks(ctx, dto.TaskFilterQuery{Status: "DONE", Overdue: "true"})
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = f.tasks.ListTasks(ctx, dto.TaskFilterQuery{Status: "TODO", Overdue: "true"})
	require.NoError(t, err)
	assert.Equal(t, []string{"In progress late", "Todo late"}, titles(items))
}

func TestTaskService_ListFiltersAndProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	p := f.project(t, "Portfolio")
	bob := f.user(t, "bob")
	f.task(t, "third", p.ID, now.Add(72*time.Hour), nil)
	f.task(t, "first", p.ID, now.Add(24*time.Hour), &bob.ID)
	f.task(t, "second", p.ID, now.Add(48*time.Hour), &bob.ID)

	all, err := f.tasks.ListTasks(ctx, dto.TaskFilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, titles(all))

	require.NotNil(t, all[0].Project)
	assert.Equal(t, "Portfolio", all[0].Project.Name)
	require.NotNil(t, all[0].Assignee)
	assert.Equal(t, bob.Name, all[0].Assignee.Name)
	assert.Equal(t, bob.Email, all[0].Assignee.Email)
	assert.Nil(t, all[2].Assignee)

	byAssignee, err := f.tasks.ListTasks(ctx, dto.TaskFilterQuery{AssigneeID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, titles(byAssignee))

	byStatus, err := f.tasks.ListTasks(ctx, dto.TaskFilterQuery{Status: "DONE"})
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	_, err = f.tasks.ListTasks(ctx, dto.TaskFilterQuery{Overdue: "maybe"})
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestTaskService_GetMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.tasks.GetTask(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestTaskService_UpdateAssigneeSemantics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	task := f.task(t, "Reassign me", p.ID, time.Now().Add(time.Hour), &alice.ID)

	// Omitted assignee leaves the assignment alone.
	updated, err := f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, alice.ID, *updated.AssigneeID)

	updated, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{AssigneeID: dto.Some(bob.ID)})
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, bob.ID, *updated.AssigneeID)

	_, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{AssigneeID: dto.Some(uuid.NewString())})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	unchanged, err := f.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, *unchanged.AssigneeID)

	updated, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{AssigneeID: dto.Null()})
	require.NoError(t, err)
	assert.Nil(t, updated.AssigneeID)
}

func TestTaskService_UpdateFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	task := f.task(t, "Original", p.ID, time.Now().Add(time.Hour), nil)

	updated, err := f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{
		Description: dto.Some("now described"),
		Status:      strPtr("DONE"),
		Deadline:    strPtr("2027-06-01T09:00:00Z"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Original", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "now described", *updated.Description)
	assert.Equal(t, constants.StatusDone, updated.Status)
	assert.True(t, time.Date(2027, 6, 1, 9, 0, 0, 0, time.UTC).Equal(updated.Deadline))

	_, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Deadline: strPtr("next week")})
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestTaskService_UpdateClearsDescription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	task := f.task(t, "Described", p.ID, time.Now().Add(time.Hour), nil)

	updated, err := f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Description: dto.Some("old")})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)

	updated, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "old", *updated.Description)

	updated, err = f.tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskRequest{Description: dto.Null()})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestTaskService_EmptyUpdateIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	created := f.task(t, "Stable", p.ID, time.Now().Add(time.Hour), nil)
	before, err := f.store.Tasks().FindByID(ctx, created.ID)
	require.NoError(t, err)

	after, err := f.tasks.UpdateTask(ctx, created.ID, dto.UpdateTaskRequest{})
	require.NoError(t, err)

	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.Status, after.Status)
	assert.True(t, before.UpdatedAt.Equal(after.UpdatedAt))
}

func TestTaskService_UpdateMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.tasks.UpdateTask(context.Background(), uuid.NewString(), dto.UpdateTaskRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)
}

func TestTaskService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	task := f.task(t, "Doomed", p.ID, time.Now().Add(time.Hour), nil)

	require.NoError(t, f.tasks.DeleteTask(ctx, task.ID))

	_, err := f.tasks.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)

	err = f.tasks.DeleteTask(ctx, task.ID)
	assert.ErrorIs(t, err, errs.ErrTaskNotFound)

	_, err = f.projects.GetProject(ctx, p.ID)
	assert.NoError(t, err)
}

func TestProjectService_DeleteCascadesTasks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doomed := f.project(t, "Doomed")
	kept := f.project(t, "Kept")
	for i := 0; i < 3; i++ {
		f.task(t, fmt.Sprintf("doomed-%d", i), doomed.ID, time.Now().Add(time.Hour), nil)
	}
	f.task(t, "kept", kept.ID, time.Now().Add(time.Hour), nil)
	require.EqualValues(t, 4, f.taskCount(t))

	require.NoError(t, f.projects.DeleteProject(ctx, doomed.ID))

	assert.EqualValues(t, 1, f.taskCount(t))
	_, err := f.projects.GetProject(ctx, doomed.ID)
	assert.ErrorIs(t, err, errs.ErrProjectNotFound)

	err = f.projects.DeleteProject(ctx, doomed.ID)
	assert.ErrorIs(t, err, errs.ErrProjectNotFound)
}

func TestUserService_DeleteClearsAssignments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	carol := f.user(t, "carol")
	ids := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		ids = append(ids, f.task(t, fmt.Sprintf("t-%d", i), p.ID, time.Now().Add(time.Hour), &carol.ID).ID)
	}

	require.NoError(t, f.users.DeleteUser(ctx, carol.ID))

	assert.EqualValues(t, 2, f.taskCount(t))
	for _, id := range ids {
		task, err := f.tasks.GetTask(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, task.AssigneeID)
		assert.Nil(t, task.Assignee)
	}

	_, err := f.users.GetUser(ctx, carol.ID)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestUserService_DuplicateEmailIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.CreateUser(ctx, dto.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = f.users.CreateUser(ctx, dto.CreateUserRequest{Name: "Alice 2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, errs.ErrEmailExists)
	assert.True(t, errs.IsConflict(err))

	bob, err := f.users.CreateUser(ctx, dto.CreateUserRequest{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = f.users.UpdateUser(ctx, bob.ID, dto.UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.ErrorIs(t, err, errs.ErrEmailExists)
}

func TestUserService_UpdateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "P")
	dave := f.user(t, "dave")
	f.task(t, "one", p.ID, time.Now().Add(time.Hour), &dave.ID)

	updated, err := f.users.UpdateUser(ctx, dave.ID, dto.UpdateUserRequest{Name: strPtr("David")})
	require.NoError(t, err)
	assert.Equal(t, "David", updated.Name)
	assert.Equal(t, dave.Email, updated.Email)

	users, err := f.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "David", users[0].Name)
	assert.EqualValues(t, 1, users[0].TaskCount)

	_, err = f.users.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestProjectService_ListGetUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.project(t, "Activity 7")
	f.project(t, "Empty")
	f.task(t, "later", p.ID, time.Now().Add(48*time.Hour), nil)
	f.task(t, "sooner", p.ID, time.Now().Add(24*time.Hour), nil)

	projects, err := f.projects.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	counts := map[string]int64{}
	for _, pr := range projects {
		counts[pr.Name] = pr.TaskCount
	}
	assert.Equal(t, map[string]int64{"Activity 7": 2, "Empty": 0}, counts)

	detail, err := f.projects.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 2)
	assert.Equal(t, "sooner", detail.Tasks[0].Title)

	updated, err := f.projects.UpdateProject(ctx, p.ID, dto.UpdateProjectRequest{Description: dto.Some("Build it")})
	require.NoError(t, err)
	assert.Equal(t, "Activity 7", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Build it", *updated.Description)

	updated, err = f.projects.UpdateProject(ctx, p.ID, dto.UpdateProjectRequest{Description: dto.Null()})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	_, err = f.projects.UpdateProject(ctx, p.ID, dto.UpdateProjectRequest{Name: strPtr(" ")})
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestDashboardService_Summary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()

	p := f.project(t, "P")
	f.task(t, "overdue", p.ID, now.Add(-24*time.Hour), nil)
	f.task(t, "due soon", p.ID, now.Add(3*24*time.Hour), nil)
	f.task(t, "far away", p.ID, now.Add(30*24*time.Hour), nil)
	done := f.task(t, "done late", p.ID, now.Add(-24*time.Hour), nil)
	_, err := f.tasks.UpdateTask(ctx, done.ID, dto.UpdateTaskRequest{Status: strPtr("DONE")})
	require.NoError(t, err)

	summary, err := f.dashboard.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.DueSoon)
	assert.Equal(t, constants.DefaultDueSoonDays, summary.DueSoonDays)
	require.Len(t, summary.OverdueTasks, 1)
	assert.Equal(t, "overdue", summary.OverdueTasks[0].Title)
	require.Len(t, summary.DueSoonTasks, 1)
	assert.Equal(t, "due soon", summary.DueSoonTasks[0].Title)
}
