package model

import (
	"time"

	"task-management-system.com/task-management-system/internal/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description *string              `json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	Deadline    time.Time            `gorm:"not null;index" json:"deadline"`
	ProjectID   string               `gorm:"size:36;not null;index" json:"projectId"`
	AssigneeID  *string              `gorm:"size:36;index" json:"assigneeId"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`

	// Loaded on demand; the wire shape of related rows is decided by the caller.
	Project  *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Assignee *User    `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// IsOverdue reports whether the deadline has passed for a task that is not DONE.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != constants.StatusDone && t.Deadline.Before(now)
}

// IsDueSoon reports whether a task that is not DONE has its deadline inside
// [now, now+days].
func (t *Task) IsDueSoon(now time.Time, days int) bool {
	if t.Status == constants.StatusDone {
		return false
	}
	limit := now.Add(time.Duration(days) * 24 * time.Hour)
	return !t.Deadline.Before(now) && !t.Deadline.After(limit)
}
