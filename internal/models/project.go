package model

import "time"

type Project struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectWithTaskCount struct {
	Project
	TaskCount int64 `gorm:"column:task_count" json:"taskCount"`
}
