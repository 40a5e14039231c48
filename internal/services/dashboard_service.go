package services

import (
	"context"
	"time"

	"task-management-system.com/task-management-system/internal/constants"
	dto "task-management-system.com/task-management-system/internal/data_models"
	repository "task-management-system.com/task-management-system/internal/repositories"
)

const dashboardPreviewSize = 5

type DashboardService struct {
	store       repository.EntityStore
	dueSoonDays int
	now         func() time.Time
}

func NewDashboardService(store repository.EntityStore, dueSoonDays int) *DashboardService {
	if dueSoonDays <= 0 {
		dueSoonDays = constants.DefaultDueSoonDays
	}
	return &DashboardService{
		store:       store,
		dueSoonDays: dueSoonDays,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Summary classifies every task at a single instant and returns the counts
// plus the first few overdue and due-soon tasks.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	tasks, err := s.store.Tasks().List(ctx, repository.TaskQuery{})
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := &dto.DashboardSummary{
		Total:        len(tasks),
		DueSoonDays:  s.dueSoonDays,
		OverdueTasks: []dto.TaskListItem{},
		DueSoonTasks: []dto.TaskListItem{},
	}

	for _, task := range tasks {
		switch {
		case task.Status == constants.StatusDone:
			summary.Completed++
		case task.IsOverdue(now):
			summary.Overdue++
			if len(summary.OverdueTasks) < dashboardPreviewSize {
				summary.OverdueTasks = append(summary.OverdueTasks, dto.NewTaskListItem(task))
			}
		case task.IsDueSoon(now, s.dueSoonDays):
			summary.DueSoon++
			if len(summary.DueSoonTasks) < dashboardPreviewSize {
				summary.DueSoonTasks = append(summary.DueSoonTasks, dto.NewTaskListItem(task))
			}
		}
	}

	return summary, nil
}
