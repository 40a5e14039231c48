package dto

import errs "task-management-system.com/task-management-system/internal/errors"

// Envelope wraps every successful response body.
type Envelope struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     []errs.FieldError `json:"errors,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type DashboardSummary struct {
	Total        int            `json:"total"`
	Completed    int            `json:"completed"`
	Overdue      int            `json:"overdue"`
	DueSoon      int            `json:"dueSoon"`
	DueSoonDays  int            `json:"dueSoonDays"`
	OverdueTasks []TaskListItem `json:"overdueTasks"`
	DueSoonTasks []TaskListItem `json:"dueSoonTasks"`
}
