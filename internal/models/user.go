package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithTaskCount is a user row plus the number of tasks assigned to it.
type UserWithTaskCount struct {
	User
	TaskCount int64 `gorm:"column:task_count" json:"taskCount"`
}
