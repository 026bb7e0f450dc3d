package models

import "time"

type Task struct {
	ID         int64      `db:"task_id"`
	Text       string     `db:"task"`
	CreatedBy  int64      `db:"created_by"`
	ModifiedBy *int64     `db:"modified_by"`
	CreatedAt  time.Time  `db:"created_at"`
	ModifiedAt *time.Time `db:"modified_at"`
}

// TaskView is a Task with its creator and modifier resolved to usernames.
type TaskView struct {
	ID         int64
	Text       string
	CreatedBy  string
	ModifiedBy *string
	CreatedAt  time.Time
	ModifiedAt *time.Time
}
