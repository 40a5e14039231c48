package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	config "task-management-system.com/task-management-system/internal/configs"
	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
	model "task-management-system.com/task-management-system/internal/models"
	repository "task-management-system.com/task-management-system/internal/repositories"
	"task-management-system.com/task-management-system/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users, projects and tasks",
	Long:  "Creates demo users if missing, replaces all projects (and their tasks) with a demo set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.NewViper())
		if err != nil {
			return err
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer closeDatabase(database)

		store := repository.NewStore(database)
		return seed(
			cmd.Context(),
			services.NewUserService(store),
			services.NewProjectService(store),
			services.NewTaskService(store),
		)
	},
}

func seed(
	ctx context.Context,
	users *services.UserService,
	projects *services.ProjectService,
	tasks *services.TaskService,
) error {
	log.Println("seeding data...")

	alice, err := ensureUser(ctx, users, "Alice Johnson", "alice@example.com")
	if err != nil {
		return err
	}
	bob, err := ensureUser(ctx, users, "Bob Smith", "bob@example.com")
	if err != nil {
		return err
	}

	existing, err := projects.ListProjects(ctx)
	if err != nil {
		return err
	}
	for _, p := range existing {
		if err := projects.DeleteProject(ctx, p.ID); err != nil {
			return err
		}
	}

	activity, err := projects.CreateProject(ctx, dto.CreateProjectRequest{
		Name:        "Activity 7",
		Description: strPtr("Build a Task Management System"),
	})
	if err != nil {
		return err
	}
	portfolio, err := projects.CreateProject(ctx, dto.CreateProjectRequest{
		Name:        "Personal Portfolio",
		Description: strPtr("Create a website to showcase projects"),
	})
	if err != nil {
		return err
	}

	day := 24 * time.Hour
	demo := []dto.CreateTaskRequest{
		newSeedTask("Setup Backend", "Initialize the API and database", "DONE", -day, activity.ID, &alice.ID),
		newSeedTask("Design Database Schema", "Users, projects and tasks", "IN_PROGRESS", 2*day, activity.ID, &alice.ID),
		newSeedTask("Build Frontend", "Pages for projects and tasks", "TODO", 5*day, activity.ID, &bob.ID),
		newSeedTask("Write Documentation", "", "TODO", -2*day, activity.ID, nil),
		newSeedTask("Choose Portfolio Theme", "", "TODO", 14*day, portfolio.ID, &bob.ID),
	}
	for _, req := range demo {
		if _, err := tasks.CreateTask(ctx, req); err != nil {
			return err
		}
	}

	log.Printf("seeded 2 users, 2 projects, %d tasks", len(demo))
	return nil
}

func ensureUser(ctx context.Context, users *services.UserService, name, email string) (*model.User, error) {
	user, err := users.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errs.IsNotFound(err) {
		return nil, err
	}
	return users.CreateUser(ctx, dto.CreateUserRequest{Name: name, Email: email})
}

func newSeedTask(title, description, status string, due time.Duration, projectID string, assigneeID *string) dto.CreateTaskRequest {
	req := dto.CreateTaskRequest{
		Title:      title,
		Status:     status,
		Deadline:   time.Now().Add(due).UTC().Format(time.RFC3339),
		ProjectID:  projectID,
		AssigneeID: assigneeID,
	}
	if description != "" {
		req.Description = strPtr(description)
	}
	return req
}

func strPtr(s string) *string { return &s }

func init() {
	rootCmd.AddCommand(seedCmd)
}
